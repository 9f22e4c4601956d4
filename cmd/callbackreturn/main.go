package main

import (
	"log"

	"github.com/AdamBrianBright/callbackreturn/callbackreturn"
	"github.com/AdamBrianBright/callbackreturn/internal/config"

	"golang.org/x/tools/go/analysis/singlechecker"
)

func main() {
	// Read .callbackreturn.yaml from $HOME/.callbackreturn or the working directory,
	// falling back to the defaults when there is none.
	conf, err := config.Load("")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	analyzer, err := callbackreturn.NewAnalyzer(conf)
	if err != nil {
		log.Fatalf("failed to configure analyzer: %v", err)
	}

	singlechecker.Main(analyzer)
}
