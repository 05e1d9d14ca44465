package metrics

import "github.com/oksasatya/user-directory/pkg/apperror"

// Result maps an operation outcome to a low-cardinality label value.
func Result(err error) string {
	if err == nil {
		return "ok"
	}
	switch apperror.KindOf(err) {
	case apperror.KindConflict:
		return "conflict"
	case apperror.KindNotFound:
		return "not_found"
	case apperror.KindValidation:
		return "invalid"
	case apperror.KindForbidden:
		return "forbidden"
	default:
		return "error"
	}
}
