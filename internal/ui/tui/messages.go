package tui

import (
	"github.com/HereLiesHugo/almamu-linux-wallpaperengine-helper/internal/domain"
	"github.com/HereLiesHugo/almamu-linux-wallpaperengine-helper/internal/usecase"
)

type displaysDetectedMsg struct {
	displays []domain.DisplayInfo
	err      error
}

type dispatchDoneMsg struct {
	result usecase.DispatchResult
}
