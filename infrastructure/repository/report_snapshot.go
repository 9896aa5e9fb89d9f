package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jlunac/ads-revenue-api/infrastructure/database/postgres"
	"github.com/jlunac/ads-revenue-api/internal/domain"
	"github.com/jlunac/ads-revenue-api/pkg/utils"
	"github.com/lib/pq"
)

const reportSnapshotsTable = "report_snapshots"

type ReportSnapshotRepository interface {
	SaveOrUpdate(snapshot *domain.ReportSnapshot) error
	GetByRangeAndDate(rng string, date time.Time) (*domain.ReportSnapshot, error)
	GetLatest(rng string) (*domain.ReportSnapshot, error)
	DeleteOlderThan(days int) (int64, error)
}

type reportSnapshotRepository struct {
	conn *postgres.Connection
}

func NewReportSnapshotRepository(conn *postgres.Connection) ReportSnapshotRepository {
	return &reportSnapshotRepository{
		conn: conn,
	}
}

func (r *reportSnapshotRepository) SaveOrUpdate(snapshot *domain.ReportSnapshot) error {
	reportJSON, err := json.Marshal(snapshot.Report)
	if err != nil {
		return fmt.Errorf("error al serializar el reporte: %w", err)
	}

	if snapshot.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("error al generar el ID del snapshot: %w", err)
		}
		snapshot.ID = id
	}

	query := squirrel.StatementBuilder.
		Insert(reportSnapshotsTable).
		Columns("id", "range_key", "date", "report").
		Values(
			snapshot.ID,
			snapshot.Range,
			snapshot.Date.Format(time.DateOnly),
			reportJSON,
		).
		Suffix(`
			ON CONFLICT (range_key, date) DO UPDATE SET
				report = EXCLUDED.report,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error al construir la consulta: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("error de base de datos: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("error al ejecutar la consulta: %w", err)
	}

	return nil
}

func (r *reportSnapshotRepository) GetByRangeAndDate(rng string, date time.Time) (*domain.ReportSnapshot, error) {
	query, args, err := squirrel.
		Select("rs.id, rs.range_key, rs.date, rs.report, rs.created_at, rs.updated_at").
		From(reportSnapshotsTable + " rs").
		Where(squirrel.Eq{"rs.range_key": rng, "rs.date": date.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la consulta: %w", err)
	}

	snapshot, err := r.scanSnapshot(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error al escanear el snapshot: %w", err)
	}

	return snapshot, nil
}

func (r *reportSnapshotRepository) GetLatest(rng string) (*domain.ReportSnapshot, error) {
	query, args, err := squirrel.
		Select("rs.id, rs.range_key, rs.date, rs.report, rs.created_at, rs.updated_at").
		From(reportSnapshotsTable + " rs").
		Where(squirrel.Eq{"rs.range_key": rng}).
		OrderBy("rs.date DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la consulta: %w", err)
	}

	snapshot, err := r.scanSnapshot(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error al escanear el snapshot: %w", err)
	}

	return snapshot, nil
}

func (r *reportSnapshotRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format(time.DateOnly)

	query, args, err := squirrel.
		Delete(reportSnapshotsTable).
		Where(squirrel.Lt{"date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("error al construir la consulta: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("error al ejecutar la consulta: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("error al obtener las filas afectadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *reportSnapshotRepository) scanSnapshot(row *sql.Row) (*domain.ReportSnapshot, error) {
	snapshot := &domain.ReportSnapshot{}
	var reportJSON []byte
	var dateStr string

	err := row.Scan(
		&snapshot.ID,
		&snapshot.Range,
		&dateStr,
		&reportJSON,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, fmt.Errorf("error al convertir la fecha: %w", err)
	}
	snapshot.Date = date

	if reportJSON != nil {
		report := &domain.AccountReport{}
		if err := json.Unmarshal(reportJSON, report); err != nil {
			return nil, fmt.Errorf("error al deserializar el reporte: %w", err)
		}
		snapshot.Report = report
	}

	return snapshot, nil
}
