package encoding

import "errors"

var ErrCouldNotMarshalFlagToBool = errors.New("could not marshal flag to bool")
