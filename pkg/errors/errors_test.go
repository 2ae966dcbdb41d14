package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"go.uber.org/multierr"
)

func TestMetadataForKnownCodes(t *testing.T) {
	tests := []struct {
		code      Code
		status    int
		publicMsg string
		retryable bool
		detailsOK bool
	}{
		{code: CodeValidation, status: http.StatusBadRequest, publicMsg: "validation failed", detailsOK: true},
		{code: CodeNotFound, status: http.StatusNotFound, publicMsg: "resource not found"},
		{code: CodeConflict, status: http.StatusConflict, publicMsg: "conflict detected", detailsOK: true},
		{code: CodeIdempotency, status: http.StatusConflict, publicMsg: "idempotency key reused", detailsOK: true},
		{code: CodePersistence, status: http.StatusInternalServerError, publicMsg: "Internal Server Error"},
		{code: CodeInternal, status: http.StatusInternalServerError, publicMsg: "Internal Server Error", retryable: true},
		{code: CodeDependency, status: http.StatusServiceUnavailable, publicMsg: "dependency unavailable", retryable: true},
	}

	for _, tt := range tests {
		meta := MetadataFor(tt.code)
		if meta.HTTPStatus != tt.status {
			t.Fatalf("code %s expected status %d got %d", tt.code, tt.status, meta.HTTPStatus)
		}
		if meta.PublicMessage != tt.publicMsg {
			t.Fatalf("code %s expected public message %q got %q", tt.code, tt.publicMsg, meta.PublicMessage)
		}
		if meta.Retryable != tt.retryable {
			t.Fatalf("code %s expected retryable %v got %v", tt.code, tt.retryable, meta.Retryable)
		}
		if meta.DetailsAllowed != tt.detailsOK {
			t.Fatalf("code %s expected details allowed %v got %v", tt.code, tt.detailsOK, meta.DetailsAllowed)
		}
	}
}

func TestMetadataForUnknownCodeDefaultsToInternal(t *testing.T) {
	meta := MetadataFor("SOMETHING_UNKNOWN")
	if meta.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected internal status, got %d", meta.HTTPStatus)
	}
}

func TestErrorConstructors(t *testing.T) {
	base := New(CodeValidation, "missing foo")
	if base.Code() != CodeValidation {
		t.Fatalf("expected validation code, got %s", base.Code())
	}
	if base.Message() != "missing foo" {
		t.Fatalf("unexpected message %q", base.Message())
	}
	if base.Details() != nil {
		t.Fatalf("details should be nil by default")
	}

	cause := stdErrors.New("insert failed")
	wrapped := Wrap(CodePersistence, cause, "db: insert recipe")
	if !stdErrors.Is(wrapped, cause) {
		t.Fatalf("expected wrapped error to unwrap to cause")
	}
	if got := As(fmt.Errorf("outer: %w", wrapped)); got != wrapped {
		t.Fatalf("expected As to find typed error through fmt wrapping")
	}
	if !IsCode(wrapped, CodePersistence) {
		t.Fatalf("expected IsCode to match persistence")
	}
	if IsCode(cause, CodePersistence) {
		t.Fatalf("plain errors carry no code")
	}

	withDetails := New(CodeConflict, "dup").WithDetails(map[string]any{"id": 1})
	if withDetails.Details() == nil {
		t.Fatalf("expected details to be retained")
	}
}

func TestNilErrorIsSafe(t *testing.T) {
	var e *Error
	if e.Code() != CodeInternal {
		t.Fatalf("nil error should report internal code")
	}
	if e.Error() != "" || e.Message() != "" || e.Details() != nil || e.Unwrap() != nil {
		t.Fatalf("nil error accessors should be zero")
	}
}

func TestDumpCapturesPGFieldsAndCombinedErrors(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23503", ConstraintName: "recipe_items_ingredient_id_fkey", TableName: "recipe_items", Message: "fk violation"}
	combined := multierr.Append(pgErr, stdErrors.New("rollback failed"))
	err := Wrap(CodePersistence, combined, "db: insert recipe line")

	dump := Dump(err)
	if dump.Code != CodePersistence {
		t.Fatalf("expected persistence code, got %s", dump.Code)
	}
	if dump.PG.Code != "23503" || dump.PG.Table != "recipe_items" || dump.PG.Constraint != "recipe_items_ingredient_id_fkey" {
		t.Fatalf("expected pg fields to be captured, got %+v", dump)
	}
	if dump.HTTPStatus != http.StatusInternalServerError || dump.Retryable {
		t.Fatalf("expected persistence metadata on dump, got %+v", dump)
	}
	if len(dump.Chain) < 3 {
		t.Fatalf("expected chain to include combined branches, got %v", dump.Chain)
	}
}

func TestDumpCapturesLibPQErrors(t *testing.T) {
	pqErr := &pq.Error{Code: "23514", Constraint: "ingredients_price_check", Table: "ingredients", Message: "check violation"}
	dump := Dump(Wrap(CodePersistence, pqErr, "db: insert ingredient"))
	if dump.PG.Code != "23514" || dump.PG.Constraint != "ingredients_price_check" {
		t.Fatalf("expected lib/pq fields to be captured, got %+v", dump.PG)
	}

	plain := Dump(New(CodeValidation, "price must be greater than zero"))
	if plain.PG != (PGDiagnostics{}) || plain.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("validation errors carry no pg fields, got %+v", plain)
	}
}
