package model

import "errors"

// Selection errors are caught before any network call is issued; each maps to
// a distinct inline message in the front-end.
var (
	ErrNoFile           = errors.New("no file chosen")
	ErrAnalyzing        = errors.New("file analysis still in progress")
	ErrNoSheetsSelected = errors.New("select at least one sheet to upload")
	ErrNoSession        = errors.New("no upload session")
)

// FallbackMessage is the last resort shown to the user when neither the
// server nor the transport produced a usable message.
const FallbackMessage = "upload failed, please try again"
