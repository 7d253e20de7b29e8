// Package sections renders the site pages as HTML.
//
// Every page is Layout around a list of sections. Sections take a Page,
// which carries the locale, its dictionary and the current path; they
// never touch the request. Links to site pages go through the locale so
// Arabic pages stay under /ar.
//
// Pages are complete without scripting. The embedded script (see Assets)
// only adds motion: a viewport-sized backdrop frame, the count-up, the
// carousel autoplay and JSON submission of the contact form.
package sections
