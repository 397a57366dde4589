package main

type IPlayer interface {
	IsHuman() bool
	Label() string
}
