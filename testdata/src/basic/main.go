package basic

import "errors"

var errNotFound = errors.New("not found")

func returned(err error, callback func(error) error) error {
	if err != nil {
		return callback(err)
	}
	return callback(nil)
}

func beforeReturn(err error, callback func(error)) {
	if err != nil {
		callback(err)
		return
	}
	callback(nil)
}

func missingReturn(err error, callback func(error)) {
	if err != nil {
		callback(err) // want "Expected return with your callback function."
	}
	callback(nil)
}

func calledTwice(callback func(error)) {
	callback(errNotFound) // want "Expected return with your callback function."
	callback(nil)
}

func ifElse(err error, callback func(error)) {
	if err != nil {
		callback(err) // want "Expected return with your callback function."
	} else {
		callback(nil) // want "Expected return with your callback function."
	}
}

func interveningStatement(err error, callback func(error)) {
	if err != nil {
		callback(err) // want "Expected return with your callback function."
		println("sent")
		return
	}
}

func deferred(callback func(error)) {
	defer callback(nil)
	println("work")
}

type handler struct {
	callback func()
}

func (h handler) field() {
	if h.callback != nil {
		h.callback()
	}
	println("done")
}

var initialized = callback()

func callback() int { return 0 }
