package main

func main() {
	s := NewServer()
	defer s.DB.Close()
	s.Run()
}
