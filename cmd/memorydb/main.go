package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fulldump/goconfig"

	"github.com/fulldump/memorydb/bootstrap"
	"github.com/fulldump/memorydb/configuration"
)

var banner = `
 __  __                                 ____  ____
|  \/  | ___ _ __ ___   ___  _ __ _   _|  _ \| __ )
| |\/| |/ _ \ '_ ' _ \ / _ \| '__| | | | | | |  _ \
| |  | |  __/ | | | | | (_) | |  | |_| | |_| | |_) |
|_|  |_|\___|_| |_| |_|\___/|_|   \__, |____/|____/
                                  |___/   version ` + bootstrap.VERSION + `
`

func main() {

	c := configuration.Default()
	goconfig.Read(&c)

	if c.Version {
		fmt.Println("Version:", bootstrap.VERSION)
		return
	}

	if c.ShowBanner {
		fmt.Println(banner)
	}

	if c.ShowConfig {
		e := json.NewEncoder(os.Stdout)
		e.SetIndent("", "    ")
		e.Encode(c)
	}

	start, _ := bootstrap.Bootstrap(&c)
	start()
}
