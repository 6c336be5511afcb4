package compile

import "fmt"

// Kind classifies a compilation failure so callers can map it to an exit
// code or HTTP status without string matching.
type Kind string

const (
	KindSourceUnreadable Kind = "source_unreadable"
	KindHeaderMissing    Kind = "header_missing"
	KindValidationFailed Kind = "validation_failed"
	KindUnknownFramework Kind = "unknown_framework"
	KindEmissionFailed   Kind = "emission_failed"
	KindPackagingFailed  Kind = "packaging_failed"
	KindQuotaExceeded    Kind = "quota_exceeded"
	KindCanceled         Kind = "canceled"
)

// Error is the compiler's failure type. Reasons is populated only for
// validation failures, one entry per fatal finding.
type Error struct {
	Kind    Kind
	Reasons []string
	Err     error
}

func (e *Error) Error() string {
	if len(e.Reasons) > 0 {
		return fmt.Sprintf("%s: %d error(s), first: %s", e.Kind, len(e.Reasons), e.Reasons[0])
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func failure(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}
