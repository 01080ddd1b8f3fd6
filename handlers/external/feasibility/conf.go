package feasibility

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	TimeoutSec = "TIMEOUT_SEC"

	DefaultServerURL      = "http://localhost"
	DefaultServerPort     = 5000
	DefaultServerEndpoint = "synthetic_feasibility_surrogate"
	DefaultTimeoutSec     = 30
)

// ClientConfig describes one prediction endpoint. The three address fields
// are joined as {url}:{port}/{path}, so ServerURL must already carry its
// scheme (e.g. "http://host"). Bad addresses are not rejected here: an
// unreachable endpoint degrades to missing scores at call time instead of
// failing component construction.
type ClientConfig struct {
	ServerURL      string
	ServerPort     int
	ServerEndpoint string
	TimeoutSec     int
}

// BuildHttpUrl builds the target address from the given url, port and path.
func BuildHttpUrl(url string, port int, path string) string {
	return fmt.Sprintf("%s:%d/%s", url, port, path)
}

func getTimeoutSec(prefix string) int {
	timeout := DefaultTimeoutSec
	if viper.IsSet(prefix + TimeoutSec) {
		timeout = viper.GetInt(prefix + TimeoutSec)
	}
	if timeout <= 0 {
		timeout = DefaultTimeoutSec
	}
	return timeout
}
