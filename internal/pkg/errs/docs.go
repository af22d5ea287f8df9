// Package errs provides the typed errors shared by the domain, application and
// adapter layers.
//
// Every error type pairs a sentinel (ErrObjectNotFound, ErrValueIsInvalid, ...)
// with a struct carrying details. Unwrap returns the sentinel, so callers branch
// with errors.Is and read details with errors.As:
//
//	var nf *errs.ObjectNotFoundError
//	if errors.As(err, &nf) {
//	    // nf.ParamName, nf.ID
//	}
package errs
