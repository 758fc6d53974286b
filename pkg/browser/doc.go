// Package browser provides the page-level capability the archive automation
// is built on, with a Playwright-backed implementation for live sessions and a
// goquery-backed implementation for saved pages.
//
// # Architecture
//
// The package is built around three layers:
//
//  1. Page and Element: the driver seam. Higher layers never import Playwright.
//  2. Session and SessionManager: a Playwright Chromium session implementing Page.
//  3. Accessor: resolves paths against a base URL, locates elements by id with
//     a bounded wait, and reads text and attributes.
//
// # Errors
//
// Element actions that time out waiting for actionability fail with
// ErrNotInteractable, which callers retry. Elements that never appear fail with
// ErrNotFound. Static documents reject every write with ErrReadOnly.
//
// # Session Lifecycle
//
//  1. Initialize: install and start the Playwright driver
//  2. StartSession: launch Chromium and open a page
//  3. Use: navigate, locate, read, click, type
//  4. CloseSession or Detach: release the browser, or leave it open for a human
//  5. Shutdown: stop the driver
//
// # Example Usage
//
//	manager := browser.NewSessionManager()
//	if err := manager.Initialize(); err != nil {
//	    return err
//	}
//	session, err := manager.StartSession("ao3", browser.SessionOptions{Headless: true})
//	if err != nil {
//	    return err
//	}
//	accessor, err := browser.NewAccessor(session, "https://archiveofourown.org", logger)
//	if err != nil {
//	    return err
//	}
//	url, err := accessor.Navigate("/works/123")
package browser
