package generated

func handwritten(ok bool, callback func()) {
	if ok {
		callback() // want "Expected return with your callback function."
	}
	println("after")
}
