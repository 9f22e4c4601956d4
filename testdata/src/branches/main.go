package branches

func switches(kind int, callback func()) {
	switch kind {
	case 1:
		callback() // want "Expected return with your callback function."
	case 2:
		callback()
		return
	default:
		return
	}
}

func typeSwitch(v any, callback func()) {
	switch v.(type) {
	case int:
		callback() // want "Expected return with your callback function."
	case string:
		callback()
		return
	}
}

func selects(ch chan int, callback func()) {
	select {
	case <-ch:
		callback() // want "Expected return with your callback function."
	default:
	}
}

func loops(items []int, callback func()) {
	for range items {
		callback() // want "Expected return with your callback function."
	}
	for i := 0; i < len(items); i++ {
		callback()
		return
	}
}

func labeled(callback func()) {
outer:
	for {
		callback() // want "Expected return with your callback function."
		break outer
	}
}
