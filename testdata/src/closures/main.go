package closures

func run(f func()) { f() }

func tailOfClosure(callback func()) {
	run(func() {
		callback()
	})
}

func nestedBranch(callback func()) {
	run(func() {
		if true {
			callback() // want "Expected return with your callback function."
		}
	})
}

func bothTails(callback func()) {
	run(func() {
		callback()
	})
	callback()
}

func goroutine(callback func()) {
	go callback() // want "Expected return with your callback function."
	go func() {
		callback()
	}()
}

var literal = func(err error, callback func(error)) {
	if err != nil {
		callback(err) // want "Expected return with your callback function."
	}
}
