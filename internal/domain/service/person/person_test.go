package person

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"namegen/internal/domain"
	"namegen/internal/domain/entity"
	"namegen/internal/domain/service/patronymic"
	"namegen/internal/domain/value"
	"namegen/pkg/contextx"
	"namegen/pkg/errcodes"
	"namegen/pkg/tests"
)

type stubSource struct {
	pool  entity.NamePool
	err   error
	loads atomic.Int32
}

func (s *stubSource) Load(context.Context) (entity.NamePool, error) {
	s.loads.Add(1)
	return s.pool, s.err
}

// firstPicker всегда берёт первый элемент списка.
type firstPicker struct {
	gender value.Gender
}

func (p firstPicker) Gender() value.Gender { return p.gender }

func (firstPicker) Pick(names []string) string { return names[0] }

func testPool() entity.NamePool {
	return entity.NamePool{
		Female:  []string{"Анна"},
		Male:    []string{"Никита", "Иван"},
		Surname: []string{"Сидорова"},
	}
}

func TestServiceGenerate(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name   string
		gender value.Gender
		want   entity.Person
	}{
		{
			name:   "Female",
			gender: value.GenderFemale,
			want:   entity.Person{Gender: value.GenderFemale, FirstName: "Анна", Patronymic: "Никитична", Surname: "Сидорова"},
		},
		{
			name:   "Male",
			gender: value.GenderMale,
			want:   entity.Person{Gender: value.GenderMale, FirstName: "Никита", Patronymic: "Никитич", Surname: "Сидорова"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			source := &stubSource{pool: testPool()}
			svc := NewService(source).WithPicker(firstPicker{gender: tc.gender})

			before := testutil.ToFloat64(personsGeneratedTotal)

			p, err := svc.Generate(context.Background())
			rq.NoError(err)
			rq.Equal(tc.want, p)
			rq.Equal(before+1, testutil.ToFloat64(personsGeneratedTotal))
		})
	}
}

func TestServicePoolIsCached(t *testing.T) {
	rq := require.New(t)

	source := &stubSource{pool: testPool()}
	svc := NewService(source).WithPicker(firstPicker{gender: value.GenderMale})

	rq.NoError(svc.Warmup(context.Background()))

	var wg sync.WaitGroup

	for range 16 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, _ = svc.Generate(context.Background())
		}()
	}

	wg.Wait()

	rq.Equal(int32(1), source.loads.Load())
}

func TestServicePoolTTL(t *testing.T) {
	rq := require.New(t)

	source := &stubSource{pool: testPool()}
	svc := NewService(source).
		WithPicker(firstPicker{gender: value.GenderMale}).
		WithPoolTTL(50 * time.Millisecond)

	_, err := svc.Generate(context.Background())
	rq.NoError(err)

	time.Sleep(100 * time.Millisecond)

	_, err = svc.Generate(context.Background())
	rq.NoError(err)

	rq.Equal(int32(2), source.loads.Load())
}

func TestServicePoolErrors(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name   string
		source *stubSource
		code   string
	}{
		{
			name:   "Source failure",
			source: &stubSource{err: errors.New("connection refused")},
			code:   errcodes.NamePoolNotReady.String(),
		},
		{
			name:   "Empty list",
			source: &stubSource{pool: entity.NamePool{Female: []string{"Анна"}, Male: []string{"Иван"}}},
			code:   errcodes.EmptyNamePool.String(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			svc := NewService(tc.source)

			_, err := svc.Generate(context.Background())
			rq.Error(err)

			code, ok := domain.GetCode(err)
			rq.True(ok)
			rq.Equal(tc.code, code.String())

			rq.Error(svc.Warmup(context.Background()))
		})
	}
}

func TestServiceGenerateMany(t *testing.T) {
	rq := require.New(t)

	svc := NewService(&stubSource{pool: testPool()}).WithPicker(firstPicker{gender: value.GenderFemale})

	persons, err := svc.GenerateMany(context.Background(), 3)
	rq.NoError(err)
	rq.Len(persons, 3)

	for _, p := range persons {
		rq.Equal("Никитична", p.Patronymic)
	}

	for _, n := range []int{0, -1, MaxBatch + 1} {
		_, err = svc.GenerateMany(context.Background(), n)
		rq.ErrorIs(err, domain.NewError(errcodes.InvalidCount, ""))
	}
}

func TestServicePatronymic(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	ctx := contextx.WithLogger(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))
	svc := NewService(&stubSource{})

	before := testutil.ToFloat64(unclassifiedTotal)
	beforeSibilant := testutil.ToFloat64(derivationsTotal.WithLabelValues(patronymic.EndingSibilant.String()))

	result, err := svc.Patronymic(ctx, "Франц", value.GenderMale)
	rq.NoError(err)
	rq.Equal("Францевич", result.Patronymic)
	rq.Equal(beforeSibilant+1, testutil.ToFloat64(derivationsTotal.WithLabelValues(patronymic.EndingSibilant.String())))
	rq.Empty(buf.String())

	result, err = svc.Patronymic(ctx, "Игорь", value.GenderFemale)
	rq.NoError(err)
	rq.Equal("Игорь", result.Patronymic)
	rq.NotNil(result.Warning)
	rq.Equal(before+1, testutil.ToFloat64(unclassifiedTotal))
	rq.Contains(buf.String(), "no patronymic rule for name ending")
	rq.Contains(buf.String(), "Игорь")

	_, err = svc.Patronymic(ctx, "", value.GenderMale)
	rq.ErrorIs(err, patronymic.ErrInvalidInput)
}

func TestRandomPicker(t *testing.T) {
	rq := require.New(t)

	picker := NewRandomPicker()
	names := []string{"Иван", "Пётр", "Фока"}

	for range 50 {
		rq.True(picker.Gender().Valid())
		rq.Contains(names, picker.Pick(names))
	}
}

func TestServiceGenerateRandomized(t *testing.T) {
	rq := require.New(t)

	pool := entity.NamePool{
		Female:  []string{"Анна", "Мария", "Ия"},
		Male:    []string{"Александр", "Андрей", "Франц", "Никита", "Антипа", "Игорь", "Савва"},
		Surname: []string{"Иванова", "Петрова"},
	}

	svc := NewService(&stubSource{pool: pool}).WithPicker(tests.NewRandomizer(42))

	persons, err := svc.GenerateMany(context.Background(), MaxBatch)
	rq.NoError(err)
	rq.Len(persons, MaxBatch)

	for _, p := range persons {
		rq.True(p.Gender.Valid())
		rq.Contains(pool.Names(value.FirstNameKind(p.Gender)), p.FirstName)
		rq.Contains(pool.Surname, p.Surname)

		derived := false

		for _, father := range pool.Male {
			result, err := patronymic.Derive(father, p.Gender)
			rq.NoError(err)

			if result.Patronymic == p.Patronymic {
				derived = true
				break
			}
		}

		rq.True(derived, p.String())
	}
}
