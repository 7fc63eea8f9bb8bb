package reminder

import "errors"

var ErrReminderDoesNotExist = errors.New("reminder does not exist")
