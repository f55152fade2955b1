// Package contact implements the contact form workflow: field state, a
// required-field guard, a single outbound request to a mail relay per
// submit, and the idle/sending/success/error status the page renders.
//
// A Form allows at most one in-flight submission. A Registry keeps one Form
// per visitor session in memory.
package contact
