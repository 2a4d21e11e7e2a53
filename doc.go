// Package segroute matches URL paths against typed routing grammars.
//
// Grammars are built with package core/route and compiled into a Router,
// which optimizes them once and then matches paths:
//
//	r := segroute.New(route.KeepRight(route.Literal("users"), route.Int()))
//	id, ok := r.Match("/users/42") // 42, true
package segroute
