package mahjong

import "errors"

// 手牌张数相关错误
var (
	ErrTooFewTiles  = errors.New("too few tiles")
	ErrTooManyTiles = errors.New("too many tiles")
	ErrInvalidTile  = errors.New("invalid tile")
)

// 和了上下文相关错误
var (
	ErrMissingWinContext = errors.New("missing win context")
)

// 牌谱记法相关错误
var (
	ErrInvalidNotation = errors.New("invalid notation")
)
