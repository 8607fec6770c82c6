package person

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"

	"namegen/internal/domain"
	"namegen/internal/domain/entity"
	"namegen/internal/domain/service/patronymic"
	"namegen/internal/domain/value"
	"namegen/pkg/errcodes"
	"namegen/pkg/logx"
)

const (
	MaxBatch = 100

	poolKey             = "pool"
	poolCleanupInterval = 10 * time.Minute
)

type PoolSource interface {
	Load(ctx context.Context) (entity.NamePool, error)
}

type Service struct {
	source  PoolSource
	picker  Picker
	pools   *cache.Cache
	poolTTL time.Duration
	loads   singleflight.Group
}

func NewService(source PoolSource) *Service {
	return &Service{
		source:  source,
		picker:  NewRandomPicker(),
		pools:   cache.New(cache.NoExpiration, poolCleanupInterval),
		poolTTL: cache.NoExpiration,
	}
}

func (s *Service) WithPicker(picker Picker) *Service {
	s.picker = picker
	return s
}

// WithPoolTTL задаёт период перезагрузки пула. При нуле пул загружается один раз.
func (s *Service) WithPoolTTL(ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = cache.NoExpiration
	}

	s.poolTTL = ttl

	return s
}

// Warmup загружает пул заранее, чтобы ошибка источника проявилась при старте.
func (s *Service) Warmup(ctx context.Context) error {
	pool, err := s.pool(ctx)
	if err != nil {
		return err
	}

	logger(ctx).Info("name pool loaded",
		slog.Int(string(value.NameKindFemale), len(pool.Female)),
		slog.Int(string(value.NameKindMale), len(pool.Male)),
		slog.Int(string(value.NameKindSurname), len(pool.Surname)),
	)

	return nil
}

// Ready проверяет, что пул имён доступен. После истечения TTL это
// перезагрузка из источника.
func (s *Service) Ready(ctx context.Context) error {
	_, err := s.pool(ctx)
	return err
}

// Generate собирает случайную персону. Отчество образуется от случайного
// мужского имени с учётом пола персоны.
func (s *Service) Generate(ctx context.Context) (entity.Person, error) {
	pool, err := s.pool(ctx)
	if err != nil {
		return entity.Person{}, err
	}

	return s.generate(ctx, pool)
}

func (s *Service) GenerateMany(ctx context.Context, n int) ([]entity.Person, error) {
	if n < 1 || n > MaxBatch {
		return nil, domain.NewError(errcodes.InvalidCount, fmt.Sprintf("count must be in [1, %d], got %d", MaxBatch, n))
	}

	pool, err := s.pool(ctx)
	if err != nil {
		return nil, err
	}

	persons := make([]entity.Person, 0, n)

	for range n {
		p, err := s.generate(ctx, pool)
		if err != nil {
			return nil, err
		}

		persons = append(persons, p)
	}

	return persons, nil
}

// Patronymic образует отчество от произвольного имени. Окончание без правила
// не ошибка: оно логируется и попадает в метрику.
func (s *Service) Patronymic(ctx context.Context, name string, gender value.Gender) (patronymic.Result, error) {
	result, err := patronymic.Derive(name, gender)
	if err != nil {
		return patronymic.Result{}, fmt.Errorf("patronymic.Derive: %w", err)
	}

	derivationsTotal.WithLabelValues(result.Ending.String()).Inc()

	if result.Warning != nil {
		unclassifiedTotal.Inc()

		logger(ctx).Warn("no patronymic rule for name ending",
			slog.String(logx.FieldName, result.Warning.Name),
			logx.Stringer(logx.FieldGender, gender),
		)
	}

	return result, nil
}

func (s *Service) generate(ctx context.Context, pool entity.NamePool) (entity.Person, error) {
	gender := s.picker.Gender()
	firstName := s.picker.Pick(pool.Names(value.FirstNameKind(gender)))
	father := s.picker.Pick(pool.Male)
	surname := s.picker.Pick(pool.Surname)

	result, err := s.Patronymic(ctx, father, gender)
	if err != nil {
		return entity.Person{}, err
	}

	person := entity.Person{
		Gender:     gender,
		FirstName:  firstName,
		Patronymic: result.Patronymic,
		Surname:    surname,
	}

	personsGeneratedTotal.Inc()

	logger(ctx).Debug("person generated", logx.Stringer(logx.FieldPerson, person))

	return person, nil
}

func (s *Service) pool(ctx context.Context) (entity.NamePool, error) {
	if cached, ok := s.pools.Get(poolKey); ok {
		return cached.(entity.NamePool), nil //nolint:forcetypeassert
	}

	v, err, _ := s.loads.Do(poolKey, func() (any, error) {
		pool, err := s.source.Load(ctx)
		if err != nil {
			return nil, domain.WrapError(err, errcodes.NamePoolNotReady, "load name pool")
		}

		if err = pool.Validate(); err != nil {
			return nil, fmt.Errorf("pool.Validate: %w", err)
		}

		s.pools.Set(poolKey, pool, s.poolTTL)

		return pool, nil
	})
	if err != nil {
		return entity.NamePool{}, err //nolint:wrapcheck
	}

	return v.(entity.NamePool), nil //nolint:forcetypeassert
}
