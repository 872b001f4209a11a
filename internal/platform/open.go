package platform

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
)

// Command constants
const (
	OpenCommand    = "open"
	XDGOpenCommand = "xdg-open"
	CmdCommand     = "cmd"
	StartCommand   = "start"
	WindowsCmdFlag = "/c"

	AndroidAMCommand  = "am"
	AndroidAMStart    = "start"
	AndroidViewAction = "android.intent.action.VIEW"
)

// ValidateURL checks that a string is an absolute http(s) URL
func ValidateURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return err
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("URL must start with http:// or https://")
	}
	if parsed.Host == "" {
		return fmt.Errorf("URL has no host")
	}
	return nil
}

// OpenURL hands a URL to the system default handler: the browser for
// documents, the registered media player for streams
func OpenURL(rawURL string) error {
	if err := ValidateURL(rawURL); err != nil {
		return err
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, rawURL).Start()
	case OSWindows:
		return exec.Command(CmdCommand, WindowsCmdFlag, StartCommand, "", rawURL).Start()
	case OSLinux:
		return exec.Command(XDGOpenCommand, rawURL).Start()
	case OSAndroid:
		return exec.Command(AndroidAMCommand, AndroidAMStart, "-a", AndroidViewAction, "-d", rawURL).Start()
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}
