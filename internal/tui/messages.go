package tui

import (
	"github.com/mtmgroup/dashboards-ui/internal/app/types"
	"github.com/mtmgroup/dashboards-ui/internal/pkg/form"
)

type authDoneMsg struct {
	result types.AuthResult
	err    error
}

type loadedMsg struct {
	err error
}

type fetchDoneMsg struct {
	published bool
}

type submitDoneMsg struct {
	dialog  dialogKind
	outcome form.Outcome
}

type toastTickMsg struct{}
