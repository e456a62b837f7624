package middleware

import (
	pkgLog "cicd-telegram-notifier/pkg/log"
	"cicd-telegram-notifier/pkg/scope"
)

type Middleware struct {
	l          pkgLog.Logger
	jwtManager scope.Manager
}

func New(l pkgLog.Logger, jwtManager scope.Manager) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
	}
}
