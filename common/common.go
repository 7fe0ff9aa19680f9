package common

import (
	"log"
)

func DefaultValue[T any]() T {
	var defaultValue T
	return defaultValue
}

func Must(err error) {
	if err != nil {
		log.Fatalln(err)
	}
}

func Must1(_ any, err error) {
	if err != nil {
		log.Fatalln(err)
	}
}
