package names

func middleware(ok bool, next func()) {
	if ok {
		next() // want "Expected return with your callback function."
	}
	println("after")
}

func finish(ok bool, done func()) {
	if ok {
		done()
		return
	}
	done()
}

func notConfigured(ok bool, callback func()) {
	if ok {
		callback()
	}
	println("after")
}
