// Package regform holds the ABC Mobile registration page: the HTML
// document, the selectors that address its controls, and the text it
// shows after a successful submit.
package regform

import (
	"bytes"
	_ "embed"
	"html/template"
	"io"
)

// DefaultStoreName is the storefront name rendered into the page title and heading
const DefaultStoreName = "ABC Mobile E-commerce"

// SuccessMessage is the text revealed when the submit button is clicked
const SuccessMessage = "Registration successful!"

// Selectors for the controls on the registration page
const (
	FormSelector           = "#registrationForm"
	LastNameSelector       = "#lastName"
	CellPhoneSelector      = "#cellPhone"
	UserIDSelector         = "#userId"
	PasswordSelector       = "#password"
	SubmitSelector         = "#submitBtn"
	SuccessMessageSelector = "#successMessage"
)

// Field describes one input on the registration form
type Field struct {
	Name      string
	Label     string
	Selector  string
	InputType string
}

// Fields lists the form inputs in the order they appear on the page
var Fields = []Field{
	{Name: "lastName", Label: "Last Name:", Selector: LastNameSelector, InputType: "text"},
	{Name: "cellPhone", Label: "Cell Phone Number:", Selector: CellPhoneSelector, InputType: "text"},
	{Name: "userId", Label: "User ID (Email):", Selector: UserIDSelector, InputType: "email"},
	{Name: "password", Label: "Password:", Selector: PasswordSelector, InputType: "password"},
}

// PageData is the data rendered into the registration page template
type PageData struct {
	StoreName string
}

//go:embed registration.html
var pageSource string

var pageTemplate = template.Must(template.New("registration.html").Parse(pageSource))

var defaultDocument = mustRender(PageData{StoreName: DefaultStoreName})

// Render writes the registration page for the given data
func Render(w io.Writer, data PageData) error {
	return pageTemplate.Execute(w, data)
}

// Document returns the registration page for the default storefront.
// The result is identical on every call.
func Document() string {
	return defaultDocument
}

func mustRender(data PageData) string {
	var buf bytes.Buffer
	if err := Render(&buf, data); err != nil {
		panic(err)
	}
	return buf.String()
}
