// Package ao3 drives the Archive of Our Own through a browser.Page.
//
// A Client establishes an authenticated session (home page, terms of service,
// login), scrapes a work page into a podfic.Work and fills the new work form
// for a podfic. The form is left unsubmitted so a human can review it.
//
// Every selector and form id the package relies on lives in selectors.go.
package ao3
