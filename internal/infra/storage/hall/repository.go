package hall

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/BMC-HallBookingService/internal/domain"
	"github.com/m04kA/BMC-HallBookingService/pkg/dbmetrics"
	"github.com/m04kA/BMC-HallBookingService/pkg/psqlbuilder"
)

var hallColumns = []string{
	"id",
	"name",
	"courts_count",
	"price_per_hour",
	"description",
	"detailed_description",
	"features",
	"amenities",
	"specifications",
	"working_hours",
	"images",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с залами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория залов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый зал
func (r *Repository) Create(ctx context.Context, hall *domain.Hall) (*domain.Hall, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	specifications, workingHours, err := encodeJSONColumns(hall)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Insert("halls").
		Columns(
			"name",
			"courts_count",
			"price_per_hour",
			"description",
			"detailed_description",
			"features",
			"amenities",
			"specifications",
			"working_hours",
			"images",
			"is_active",
		).
		Values(
			hall.Name,
			hall.CourtsCount,
			hall.PricePerHour,
			hall.Description,
			hall.DetailedDescription,
			pq.Array(hall.Features),
			pq.Array(hall.Amenities),
			specifications,
			workingHours,
			pq.Array(hall.Images),
			hall.IsActive,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&hall.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	hall.CreatedAt = createdAt.Time
	hall.UpdatedAt = updatedAt.Time

	return hall, nil
}

// GetByID получает зал по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Hall, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(hallColumns...).
		From("halls").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)

	hall, err := scanHall(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrHallNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan hall: %v", ErrScanRow, err)
	}

	return hall, nil
}

// List получает список залов
// При filter.OnlyActive возвращает только активные залы (публичный каталог)
func (r *Repository) List(ctx context.Context, filter domain.HallsFilter) ([]*domain.Hall, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(hallColumns...).
		From("halls").
		OrderBy("id ASC")

	if filter.OnlyActive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	halls := make([]*domain.Hall, 0)
	for rows.Next() {
		hall, err := scanHall(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		halls = append(halls, hall)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return halls, nil
}

// Update обновляет зал целиком
func (r *Repository) Update(ctx context.Context, hall *domain.Hall) (*domain.Hall, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	specifications, workingHours, err := encodeJSONColumns(hall)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Update("halls").
		Set("name", hall.Name).
		Set("courts_count", hall.CourtsCount).
		Set("price_per_hour", hall.PricePerHour).
		Set("description", hall.Description).
		Set("detailed_description", hall.DetailedDescription).
		Set("features", pq.Array(hall.Features)).
		Set("amenities", pq.Array(hall.Amenities)).
		Set("specifications", specifications).
		Set("working_hours", workingHours).
		Set("images", pq.Array(hall.Images)).
		Set("is_active", hall.IsActive).
		Where(squirrel.Eq{"id": hall.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrHallNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	hall.CreatedAt = createdAt.Time
	hall.UpdatedAt = updatedAt.Time

	return hall, nil
}

// SetActive включает или выключает зал в каталоге бронирования
func (r *Repository) SetActive(ctx context.Context, id int64, active bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("halls").
		Set("is_active", active).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetActive - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetActive - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetActive - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrHallNotFound
	}

	return nil
}

// Delete удаляет зал (физическое удаление, использовать осторожно)
// Публичная поверхность API деактивирует залы через SetActive
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("halls").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrHallNotFound
	}

	return nil
}

// encodeJSONColumns сериализует JSONB колонки зала
func encodeJSONColumns(hall *domain.Hall) (specifications, workingHours []byte, err error) {
	specs := hall.Specifications
	if specs == nil {
		specs = map[string]string{}
	}
	specifications, err = json.Marshal(specs)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: specifications: %v", ErrEncodeJSON, err)
	}

	hours := hall.WorkingHours
	if hours == nil {
		hours = domain.WorkingHours{}
	}
	workingHours, err = json.Marshal(hours)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: working_hours: %v", ErrEncodeJSON, err)
	}

	return specifications, workingHours, nil
}

// scanHall сканирует одну строку залов
func scanHall(scan func(dest ...interface{}) error) (*domain.Hall, error) {
	var hall domain.Hall
	var specifications, workingHours []byte
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&hall.ID,
		&hall.Name,
		&hall.CourtsCount,
		&hall.PricePerHour,
		&hall.Description,
		&hall.DetailedDescription,
		pq.Array(&hall.Features),
		pq.Array(&hall.Amenities),
		&specifications,
		&workingHours,
		pq.Array(&hall.Images),
		&hall.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(specifications) > 0 {
		if err := json.Unmarshal(specifications, &hall.Specifications); err != nil {
			return nil, err
		}
	}
	if len(workingHours) > 0 {
		if err := json.Unmarshal(workingHours, &hall.WorkingHours); err != nil {
			return nil, err
		}
	}

	hall.CreatedAt = createdAt.Time
	hall.UpdatedAt = updatedAt.Time

	return &hall, nil
}
