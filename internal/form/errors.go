package form

import "errors"

// ErrNoSession is returned by Submit when nothing is being created or edited.
var ErrNoSession = errors.New("no create or edit in progress")
