// Package namefile загружает пул имён из текстовых файлов: по одному или
// нескольку имён в строке, разделителем служат любые пробельные символы.
package namefile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/unicode/norm"

	"namegen/internal/domain/entity"
	"namegen/internal/domain/value"
	"namegen/pkg/contextx"
	"namegen/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type Source struct {
	Female  []string
	Male    []string
	Surname []string
}

func (s Source) Load(ctx context.Context) (entity.NamePool, error) {
	var (
		pool entity.NamePool
		err  error
	)

	if pool.Female, err = Merge(ctx, value.NameKindFemale, s.Female...); err != nil {
		return entity.NamePool{}, err
	}

	if pool.Male, err = Merge(ctx, value.NameKindMale, s.Male...); err != nil {
		return entity.NamePool{}, err
	}

	if pool.Surname, err = Merge(ctx, value.NameKindSurname, s.Surname...); err != nil {
		return entity.NamePool{}, err
	}

	return pool, nil
}

// Merge читает файлы одного списка и возвращает имена без повторов в
// порядке первого появления. Отсутствующий файл пропускается с
// предупреждением.
func Merge(ctx context.Context, kind value.NameKind, fileNames ...string) ([]string, error) {
	var names []string

	for _, fileName := range fileNames {
		b, err := os.ReadFile(fileName)
		if errors.Is(err, fs.ErrNotExist) {
			logger(ctx).Warn("name file not found",
				slog.String(logx.FieldFile, fileName),
				logx.Stringer(logx.FieldNameKind, kind),
			)

			continue
		}

		if err != nil {
			return nil, fmt.Errorf("os.ReadFile: %w", err)
		}

		parsed := Parse(string(b))
		names = append(names, parsed...)

		logger(ctx).Debug("name file read",
			slog.String(logx.FieldFile, fileName),
			logx.Stringer(logx.FieldNameKind, kind),
			slog.Int(logx.FieldCount, len(parsed)),
		)
	}

	return lo.Uniq(names), nil
}

// Parse разбивает текст на имена и приводит их к NFC, чтобы "ё", записанная
// двумя кодовыми точками, совпадала с однобуквенной.
func Parse(content string) []string {
	return lo.Map(strings.Fields(content), func(name string, _ int) string {
		return norm.NFC.String(name)
	})
}
