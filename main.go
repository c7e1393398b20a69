package main

import (
	"log"

	"github.com/boypt/simple-trackercheck/checker"
	"github.com/jpillora/opts"
)

var VERSION = "0.0.0-src" //set with ldflags

func main() {
	c := checker.Checker{
		ConfigPath: "simple-trackercheck.yaml",
	}

	o := opts.New(&c)
	o.Version(VERSION)
	o.PkgRepo()
	o.SetLineWidth(96)
	o.Parse()

	if err := c.Run(VERSION); err != nil {
		log.Fatal(err)
	}
}
