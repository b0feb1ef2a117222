//go:build e2e
// +build e2e

package e2e

import (
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"

	"github.com/abcmobile/registration/internal/models"
	"github.com/abcmobile/registration/internal/regform"
)

// testData is the registration record every test in the run fills in
var testData = models.RegistrationInput{
	LastName:  "Doe",
	CellPhone: "1234567890",
	UserID:    "john.doe@example.com",
	Password:  "SecurePass123!",
}

// registrationData returns the run-wide registration record
func registrationData() models.RegistrationInput {
	return testData
}

// newContext creates an isolated browser context (own cookies and storage)
// that is closed when the test finishes, whatever the outcome.
func newContext(t *testing.T) playwright.BrowserContext {
	t.Helper()

	ctx, err := browser.NewContext()
	require.NoError(t, err, "failed to create browser context")
	t.Cleanup(func() {
		if err := ctx.Close(); err != nil {
			t.Logf("closing browser context: %v", err)
		}
	})
	return ctx
}

// newPage opens a page in ctx at the configured viewport. It is closed
// before its context since t.Cleanup runs in reverse order.
func newPage(t *testing.T, ctx playwright.BrowserContext) playwright.Page {
	t.Helper()

	page, err := ctx.NewPage()
	require.NoError(t, err, "failed to open page")
	t.Cleanup(func() {
		if err := page.Close(); err != nil {
			t.Logf("closing page: %v", err)
		}
	})

	require.NoError(t, page.SetViewportSize(browserConfig.ViewportWidth, browserConfig.ViewportHeight),
		"failed to set viewport")
	page.SetDefaultTimeout(browserConfig.TimeoutMillis())
	return page
}

// loadRegistrationPage replaces the page's document with the registration
// form. Nothing is fetched over the network.
func loadRegistrationPage(t *testing.T, page playwright.Page) *registrationPage {
	t.Helper()

	require.NoError(t, page.SetContent(regform.Document()), "failed to load registration page")
	return newRegistrationPage(t, page)
}

// setupRegistrationPage runs the whole per-test fixture chain:
// context, page, then the injected registration form.
func setupRegistrationPage(t *testing.T) *registrationPage {
	t.Helper()

	ctx := newContext(t)
	page := newPage(t, ctx)
	return loadRegistrationPage(t, page)
}

// registrationPage wraps the registration form's controls
type registrationPage struct {
	t      *testing.T
	Page   playwright.Page
	expect playwright.PlaywrightAssertions
}

func newRegistrationPage(t *testing.T, page playwright.Page) *registrationPage {
	return &registrationPage{
		t:      t,
		Page:   page,
		expect: playwright.NewPlaywrightAssertions(browserConfig.TimeoutMillis()),
	}
}

// Fill types each value of in into its input, in form order
func (rp *registrationPage) Fill(in models.RegistrationInput) {
	rp.t.Helper()

	rp.FillField(regform.LastNameSelector, in.LastName)
	rp.FillField(regform.CellPhoneSelector, in.CellPhone)
	rp.FillField(regform.UserIDSelector, in.UserID)
	rp.FillField(regform.PasswordSelector, in.Password)
}

// FillField replaces the value of a single input
func (rp *registrationPage) FillField(selector, value string) {
	rp.t.Helper()

	err := rp.Page.Locator(selector).Fill(value)
	require.NoError(rp.t, err, "failed to fill %s", selector)
}

// Submit clicks the register button
func (rp *registrationPage) Submit() {
	rp.t.Helper()

	err := rp.Page.Locator(regform.SubmitSelector).Click()
	require.NoError(rp.t, err, "failed to click submit")
}

// SuccessMessage returns the rendered text of the success paragraph
func (rp *registrationPage) SuccessMessage() string {
	rp.t.Helper()

	text, err := rp.Page.Locator(regform.SuccessMessageSelector).InnerText()
	require.NoError(rp.t, err, "failed to read success message")
	return text
}

// FieldValue returns the current value of an input
func (rp *registrationPage) FieldValue(selector string) string {
	rp.t.Helper()

	value, err := rp.Page.Locator(selector).InputValue()
	require.NoError(rp.t, err, "failed to read %s", selector)
	return value
}

// State reads the form as currently rendered
func (rp *registrationPage) State() models.FormState {
	rp.t.Helper()

	visible, err := rp.Page.Locator(regform.SuccessMessageSelector).IsVisible()
	require.NoError(rp.t, err, "failed to read success message visibility")

	return models.FormState{
		LastName:       rp.FieldValue(regform.LastNameSelector),
		CellPhone:      rp.FieldValue(regform.CellPhoneSelector),
		UserID:         rp.FieldValue(regform.UserIDSelector),
		Password:       rp.FieldValue(regform.PasswordSelector),
		SuccessVisible: visible,
	}
}

// ExpectValues asserts that every input holds exactly the given value
func (rp *registrationPage) ExpectValues(in models.RegistrationInput) {
	rp.t.Helper()

	expected := map[string]string{
		regform.LastNameSelector:  in.LastName,
		regform.CellPhoneSelector: in.CellPhone,
		regform.UserIDSelector:    in.UserID,
		regform.PasswordSelector:  in.Password,
	}
	for _, field := range regform.Fields {
		err := rp.expect.Locator(rp.Page.Locator(field.Selector)).ToHaveValue(expected[field.Selector])
		require.NoError(rp.t, err, "%s does not hold the filled value", field.Selector)
	}
}

// ExpectSubmitted asserts the success message is showing with the exact text
func (rp *registrationPage) ExpectSubmitted() {
	rp.t.Helper()

	err := rp.expect.Locator(rp.Page.Locator(regform.SuccessMessageSelector)).ToBeVisible()
	require.NoError(rp.t, err, "success message not visible")
	require.Equal(rp.t, regform.SuccessMessage, rp.SuccessMessage())
}

// ExpectEmpty asserts the form is in its initial state
func (rp *registrationPage) ExpectEmpty() {
	rp.t.Helper()

	err := rp.expect.Locator(rp.Page.Locator(regform.SuccessMessageSelector)).ToBeHidden()
	require.NoError(rp.t, err, "success message visible on a fresh page")
	require.Equal(rp.t, models.FormState{}, rp.State())
}
