package shapes

func straight(n int) int {
	return n + 1
}

func loop(n int) int {
	s := 0
	for i := 0; i < n; i++ {
		s += i
	}
	return s
}

func deferred(n int) int {
	if n == 0 {
		return 1
	}
	return n * deferred(n-1)
}

func tail(n, acc int) int {
	if n == 0 {
		return acc
	}
	return tail(n-1, n*acc)
}

func tailPair(n int) (int, error) {
	if n == 0 {
		return 0, nil
	}
	return tailPair(n - 1)
}

func checked(n int) (int, error) {
	if n == 0 {
		return 1, nil
	}
	r, err := checked(n - 1)
	if err != nil {
		return 0, err
	}
	return n * r, nil
}
