package trig

//go:generate go run github.com/intmath/trigo/cmd/triggen -sizes 32,64,128,256,512 -out .
