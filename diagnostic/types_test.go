package diagnostic_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reflectkit/introspector/diagnostic"
)

var errDenied = errors.New("denied")

func TestDiagnostics_Buckets(t *testing.T) {
	var d diagnostic.Diagnostics
	assert.True(t, d.IsEmpty())
	require.NoError(t, d.Error())

	d.AddWarning(diagnostic.CodeFieldUnreadable, errDenied, "pkg.Order", "Order.secret")
	d.AddInfo(diagnostic.CodeFieldSkipped, "embedded field", "pkg.Order", "Order.Base")

	assert.False(t, d.IsEmpty())
	assert.False(t, d.HasErrors())
	require.NoError(t, d.Error())
	assert.Equal(t, []string{"Order.secret"}, d.FieldPaths(diagnostic.CodeFieldUnreadable))
	assert.Equal(t, []string{"Order.Base"}, d.FieldPaths(diagnostic.CodeFieldSkipped))
}

func TestDiagnostics_ErrorJoinsAndUnwraps(t *testing.T) {
	var d diagnostic.Diagnostics
	d.AddError(diagnostic.CodeFieldUnreadable, errDenied, "pkg.Order", "Order.secret")

	err := d.Error()
	require.Error(t, err)
	assert.ErrorIs(t, err, errDenied)
	assert.Contains(t, err.Error(), "[pkg.Order] Order.secret: [field-unreadable] denied")
}

func TestDiagnostics_ByCodeErrorsFirst(t *testing.T) {
	var d diagnostic.Diagnostics
	d.AddWarning(diagnostic.CodeCycle, errDenied, "", "A.x")
	d.AddError(diagnostic.CodeCycle, errDenied, "", "B.y")

	found := d.ByCode(diagnostic.CodeCycle)
	require.Len(t, found, 2)
	assert.Equal(t, diagnostic.SeverityError, found[0].Severity)
	assert.Equal(t, "B.y: [cycle] denied", found[0].String())
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "info", diagnostic.SeverityInfo.String())
	assert.Equal(t, "warning", diagnostic.SeverityWarning.String())
	assert.Equal(t, "error", diagnostic.SeverityError.String())
	assert.Equal(t, "unknown", diagnostic.Severity(42).String())
}
