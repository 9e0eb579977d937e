// Package config provides configuration loading for appshell hosts.
//
// The configuration is stored in appshell.json next to the binary or at
// the path given with --config. Every key can be overridden from the
// environment with the APPSHELL_ prefix, dots replaced by underscores:
//
//	APPSHELL_SERVER_PORT=9000
//	APPSHELL_LOG_FORMAT=json
//
// # Configuration File Structure
//
//	{
//	  "name": "appshell",
//	  "server": {
//	    "host": "localhost",
//	    "port": 3000,
//	    "shutdownTimeout": "5s"
//	  },
//	  "render": {
//	    "pretty": false,
//	    "title": "appshell"
//	  },
//	  "log": {
//	    "level": "info",
//	    "format": "text"
//	  },
//	  "metrics": {
//	    "enabled": true,
//	    "path": "/metrics",
//	    "namespace": "appshell"
//	  },
//	  "tracing": {
//	    "enabled": false,
//	    "serviceName": "appshell"
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Listening on", cfg.Address())
package config
