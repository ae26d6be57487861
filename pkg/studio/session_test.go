package studio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/invoice-studio/pkg/studio"
)

func TestSession_EndToEnd(t *testing.T) {
	session := studio.NewSession()

	require.NoError(t, session.UpdateSenderField("name", "Acme Studio"))
	require.NoError(t, session.UpdateReceiverField("name", "Globex Corp"))
	require.NoError(t, session.UpdateDetailsField("taxRate", "0.1"))

	id := session.AddLineItem()
	require.NoError(t, session.UpdateLineItem(id, "description", "Consulting"))
	require.NoError(t, session.UpdateLineItem(id, "quantity", "10"))
	require.NoError(t, session.UpdateLineItem(id, "rate", "50"))

	totals := session.Totals()
	assert.Equal(t, "500", totals.Subtotal.String())
	assert.Equal(t, "50", totals.TaxAmount.String())
	assert.Equal(t, "550", totals.Total.String())

	// Every template renders the same document without error
	for _, name := range []studio.TemplateName{
		studio.TemplateModern,
		studio.TemplateClassic,
		studio.TemplateBold,
		studio.TemplateMinimal,
	} {
		require.NoError(t, session.SetDesignProperty("template", string(name)))
		pdf, err := session.Render("Invoice")
		require.NoError(t, err, "template %s", name)
		assert.NotEmpty(t, pdf)
	}
}

func TestSession_Export(t *testing.T) {
	session := studio.NewSession()
	id := session.AddLineItem()
	require.NoError(t, session.UpdateLineItem(id, "quantity", "2"))
	require.NoError(t, session.UpdateLineItem(id, "rate", "99.5"))

	capture, err := session.Export("Quarterly Invoice")
	require.NoError(t, err)
	assert.Equal(t, "Quarterly Invoice", capture.Title)
	assert.Equal(t, 1, capture.Pages)
}

func TestSession_Reset(t *testing.T) {
	session := studio.NewSession()
	session.AddLineItem()
	require.NoError(t, session.SetDesignProperty("accentColor", "#112233"))

	session.Reset()

	inv, design := session.Snapshot()
	assert.Empty(t, inv.LineItems)
	assert.Equal(t, "blue-600", design.AccentColor)
}

func TestFormatCurrency_Reexport(t *testing.T) {
	totals := studio.NewSession().Totals()
	assert.Equal(t, "$0.00", studio.FormatCurrency(totals.Total, "USD"))
}

func TestFonts_Reexport(t *testing.T) {
	serif := studio.Fonts("serif")
	require.NotEmpty(t, serif)
	assert.NotEmpty(t, serif[0].Family)
}
