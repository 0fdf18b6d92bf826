package errors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	pkgerrors "github.com/musterpoint/muster/pkg/errors"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNotFoundError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.NotFoundError{
			Resource: "model",
			Name:     "Intercessor",
		}
		assert.Equal(t, `model "Intercessor" not found`, err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewNotFoundError("formation", "Patrol")
		assert.Equal(t, `formation "Patrol" not found`, err.Error())
		assert.True(t, pkgerrors.IsNotFound(err))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewNotFoundError("weapon", "Bolt Rifle")
		wrapped := errors.Join(errors.New("failed"), base)
		assert.True(t, pkgerrors.IsNotFound(wrapped))
	})
}

func TestDuplicateEntryError(t *testing.T) {
	t.Run("with file", func(t *testing.T) {
		err := pkgerrors.NewDuplicateEntryError("models", "Trooper", "models.csv")
		assert.Equal(t, `duplicate models entry "Trooper" in models.csv`, err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrDuplicateEntry))
	})

	t.Run("without file", func(t *testing.T) {
		err := &pkgerrors.DuplicateEntryError{Catalog: "weapons", Name: "Rifle"}
		assert.Equal(t, `duplicate weapons entry "Rifle"`, err.Error())
		assert.True(t, pkgerrors.IsDuplicateEntry(err))
	})
}

func TestCatalogRowError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := pkgerrors.NewCatalogRowError("models.csv", 3, "Cost", "not a number")
		assert.Equal(t, `models.csv row 3: field "Cost": not a number`, err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrMalformedRow))
	})

	t.Run("without field", func(t *testing.T) {
		err := pkgerrors.NewCatalogRowError("weapons.csv", 1, "", "too few columns")
		assert.Equal(t, "weapons.csv row 1: too few columns", err.Error())
		assert.True(t, pkgerrors.IsMalformedRow(err))
	})

	t.Run("unwrap", func(t *testing.T) {
		inner := errors.New("strconv failure")
		err := &pkgerrors.CatalogRowError{File: "f.csv", Row: 2, Message: "bad", Err: inner}
		assert.Equal(t, inner, errors.Unwrap(err))
	})
}

func TestSchemaError(t *testing.T) {
	t.Run("with path", func(t *testing.T) {
		err := pkgerrors.NewSchemaError("lists/crusade.yaml", `detachment "Vanguard"`, "missing Type")
		assert.Equal(t, `lists/crusade.yaml: detachment "Vanguard": missing Type`, err.Error())
		assert.True(t, pkgerrors.IsSchemaError(err))
	})

	t.Run("without path", func(t *testing.T) {
		err := pkgerrors.NewSchemaError("lists/crusade.yaml", "", "missing army name")
		assert.Equal(t, "lists/crusade.yaml: missing army name", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrSchema))
	})
}

func TestUnknownReferenceError(t *testing.T) {
	err := pkgerrors.NewUnknownReferenceError("Sergent", "item", `army "Crusaders" > detachment "Vanguard" > squad "Assault"`)
	assert.Contains(t, err.Error(), `"Sergent"`)
	assert.Contains(t, err.Error(), `squad "Assault"`)
	assert.True(t, pkgerrors.IsUnknownReference(err))
	assert.False(t, pkgerrors.IsNotFound(err))
}

func TestCostOverrideError(t *testing.T) {
	err := pkgerrors.NewCostOverrideError(`squad "Assault"`, "quantity", -2, "must be non-negative")
	assert.Equal(t, `invalid quantity -2 at squad "Assault": must be non-negative`, err.Error())
	assert.True(t, pkgerrors.IsInvalidOverride(err))
}

func TestWrapHelpers(t *testing.T) {
	t.Run("nil passthrough", func(t *testing.T) {
		assert.NoError(t, pkgerrors.WrapIO("read", "data/models.csv", nil))
		assert.NoError(t, pkgerrors.WrapParse("yaml", "lists/a.yaml", nil))
		assert.NoError(t, pkgerrors.WrapRoster("lists/a.yaml", nil))
	})

	t.Run("wrap io", func(t *testing.T) {
		inner := errors.New("permission denied")
		err := pkgerrors.WrapIO("write", "html/index.html", inner)
		assert.Contains(t, err.Error(), "html/index.html")
		assert.Equal(t, inner, errors.Unwrap(err))
	})

	t.Run("wrap roster preserves kind", func(t *testing.T) {
		inner := pkgerrors.NewUnknownReferenceError("Sergent", "item", "squad")
		err := pkgerrors.WrapRoster("lists/bad.yaml", inner)
		assert.Contains(t, err.Error(), "lists/bad.yaml")
		assert.True(t, pkgerrors.IsUnknownReference(err))
	})
}
