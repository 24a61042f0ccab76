package slot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/Pickleball-BookingService/internal/domain"
	"github.com/m04kA/Pickleball-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Pickleball-BookingService/pkg/psqlbuilder"
)

// slotColumns колонки таблицы slots в порядке сканирования
var slotColumns = []string{
	"id",
	"kind",
	"start_at",
	"start_time",
	"location",
	"name",
	"capacity_remaining",
	"capacity_total",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы со слотами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// FetchUpcoming получает ближайшие слоты указанного типа
// Выбираются слоты с start_at >= from, отсортированные по возрастанию,
// не более limit штук
func (r *Repository) FetchUpcoming(ctx context.Context, kind domain.SlotKind, from time.Time, limit int) ([]domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("slots").
		Where(squirrel.Eq{"kind": kind}).
		Where(squirrel.GtOrEq{"start_at": from}).
		OrderBy("start_at ASC").
		Limit(uint64(limit)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FetchUpcoming - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FetchUpcoming - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

// FetchWindow получает слоты кортов в указанном окне дат
// Окно полуоткрытое [from, to): to обычно первое число следующего месяца,
// так что последний день месяца попадает в выборку целиком
func (r *Repository) FetchWindow(ctx context.Context, from, to time.Time) ([]domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("slots").
		Where(squirrel.Eq{"kind": domain.KindCourt}).
		Where(squirrel.GtOrEq{"start_at": from}).
		Where(squirrel.Lt{"start_at": to}).
		OrderBy("start_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FetchWindow - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FetchWindow - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

// GetByIDForUpdate получает слот по ID с блокировкой строки
// Вызывается только внутри транзакции (через txmanager) - блокировка
// удерживается до её завершения
func (r *Repository) GetByIDForUpdate(ctx context.Context, id string) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("slots").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDForUpdate - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Slot
	var name sql.NullString
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.Kind,
		&s.StartAt,
		&s.StartTime,
		&s.Location,
		&name,
		&s.CapacityRemaining,
		&s.CapacityTotal,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		// Ошибка драйвера сохраняется в цепочке: менеджер транзакций по ней
		// распознаёт конфликт сериализации и повторяет транзакцию
		return nil, fmt.Errorf("%w: GetByIDForUpdate - scan slot: %w", ErrScanRow, err)
	}

	s.Name = name.String
	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	if err := validateSlot(&s); err != nil {
		return nil, err
	}

	return &s, nil
}

// DecrementCapacity атомарно списывает одно место в слоте
// Условный UPDATE затрагивает строку только при capacity_remaining > 0,
// поэтому счётчик никогда не уходит в минус даже при конкурирующих записях.
// Возвращает ErrSlotFull, если строка не затронута: мест не осталось либо
// слота нет. Отсутствие слота вызывающий код отсекает предварительным
// чтением с блокировкой
func (r *Repository) DecrementCapacity(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set("capacity_remaining", squirrel.Expr("capacity_remaining - 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Gt{"capacity_remaining": 0}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DecrementCapacity - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DecrementCapacity - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DecrementCapacity - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		// Строка не затронута: либо слот отсутствует, либо мест не осталось.
		// Вызывающий код различает эти случаи предварительным чтением с блокировкой
		return ErrSlotFull
	}

	return nil
}

// scanSlots сканирует результаты запроса в слайс слотов
// Некорректные строки отклоняются целиком - частичный результат не возвращается
func (r *Repository) scanSlots(rows *sql.Rows) ([]domain.Slot, error) {
	slots := make([]domain.Slot, 0)

	for rows.Next() {
		var s domain.Slot
		var name sql.NullString
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&s.ID,
			&s.Kind,
			&s.StartAt,
			&s.StartTime,
			&s.Location,
			&name,
			&s.CapacityRemaining,
			&s.CapacityTotal,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %w", ErrScanRow, err)
		}

		s.Name = name.String
		s.CreatedAt = createdAt.Time
		s.UpdatedAt = updatedAt.Time

		if err := validateSlot(&s); err != nil {
			return nil, err
		}

		slots = append(slots, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %w", ErrScanRow, err)
	}

	return slots, nil
}

// validateSlot проверяет запись слота на границе репозитория
func validateSlot(s *domain.Slot) error {
	if !s.Kind.IsValid() {
		return fmt.Errorf("%w: slot id=%s has unknown kind %q", ErrMalformedRecord, s.ID, s.Kind)
	}
	if s.CapacityRemaining < 0 {
		return fmt.Errorf("%w: slot id=%s has negative capacity %d", ErrMalformedRecord, s.ID, s.CapacityRemaining)
	}
	if s.StartAt.IsZero() {
		return fmt.Errorf("%w: slot id=%s has zero start time", ErrMalformedRecord, s.ID)
	}
	return nil
}
