package req

import (
	"fmt"
	"net/http"
	"strconv"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"namegen/pkg/errcodes"
)

var (
	json     = jsoniter.ConfigCompatibleWithStandardLibrary         //nolint:gochecknoglobals // skip
	validate = validator.New(validator.WithRequiredStructEnabled()) //nolint:gochecknoglobals // skip
)

func Read(r *http.Request, dest any) error {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return failure.NewInvalidArgumentError(
			fmt.Errorf("json.Decode: %w", err).Error(),
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription("Invalid JSON"),
		)
	}

	if err := validate.StructCtx(r.Context(), dest); err != nil {
		return failure.NewInvalidArgumentError(
			"validation error",
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription(err.Error()),
		)
	}

	return nil
}

// QueryInt reads an optional integer query parameter. A missing parameter
// yields def; a malformed or out-of-range one is an invalid argument error
// carrying code.
func QueryInt(r *http.Request, key string, def, minValue, maxValue int, code failure.ErrorCode) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v < minValue || v > maxValue {
		return 0, failure.NewInvalidArgumentError(
			fmt.Sprintf("query parameter %q: %q", key, raw),
			failure.WithCode(code),
			failure.WithDescription(fmt.Sprintf("%s must be an integer in [%d, %d]", key, minValue, maxValue)),
		)
	}

	return v, nil
}
