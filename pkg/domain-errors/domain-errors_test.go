package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessage(t *testing.T) {
	err := New(CodeValidation, "area must be a positive number")
	assert.Equal(t, "area must be a positive number", err.Error())

	bare := New(CodeRuleLoad, "")
	assert.Equal(t, "rule_load_failed", bare.Error())
}

func TestWrapPreservesExistingCode(t *testing.T) {
	inner := New(CodeRuleLoad, "corpus unreadable")
	wrapped := Wrap(inner, CodeInternal, "reload failed")

	assert.True(t, HasCode(wrapped, CodeRuleLoad))
	assert.False(t, HasCode(wrapped, CodeInternal))
	assert.ErrorIs(t, wrapped, inner)
}

func TestWrapPlainError(t *testing.T) {
	inner := fmt.Errorf("open rules.json: no such file")
	wrapped := Wrap(inner, CodeRuleLoad, "reload failed")

	require.True(t, HasCode(wrapped, CodeRuleLoad))
	assert.ErrorIs(t, wrapped, inner)
}

func TestIsMatchesByCode(t *testing.T) {
	a := New(CodeAugmentation, "generator timed out")
	b := New(CodeAugmentation, "different message")

	assert.True(t, errors.Is(a, b))
	assert.False(t, errors.Is(a, New(CodeTimeout, "")))
}

func TestHasCodeOnNonDomainError(t *testing.T) {
	assert.False(t, HasCode(errors.New("plain"), CodeValidation))
	assert.False(t, HasCode(nil, CodeValidation))
}
