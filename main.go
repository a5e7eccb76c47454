package main

import (
	"log"
	"os"

	"zeroshot/config"
	"zeroshot/controllers"
	dbpkg "zeroshot/db"
	"zeroshot/ml"
	"zeroshot/router"

	"github.com/gin-gonic/gin"
)

// =====================
// ENV
// =====================
//
// - OPENAI_API_KEY   (only needed when the generator endpoint requires auth;
//                     local OpenAI-compatible servers usually don't)
//
// Everything else comes from the JSON config file (first CLI argument,
// default "config.json"): port, database, batch limit, encoder model and
// tokenizer paths, generator endpoint/model.
// =====================

func main() {
	configPath := "config.json"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}
	cfg := config.Get(configPath)

	dbpkg.SetConfigurations(cfg)
	controllers.SetConfigurations(cfg)

	database, err := dbpkg.Connect()
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	engine := ml.NewEngine(nil, nil)

	if cfg.Models.EncoderPath != "" {
		encoder, err := ml.NewOrtEncoder(ml.OrtConfig{
			OrtDLL:        cfg.Models.OrtDLL,
			ModelPath:     cfg.Models.EncoderPath,
			TokenizerPath: cfg.Models.TokenizerPath,
			MaxSeqLen:     cfg.Models.MaxSeqLen,
		})
		if err != nil {
			log.Fatalf("load encoder: %v", err)
		}
		if err := engine.SwapEncoder(encoder); err != nil {
			log.Fatalf("install encoder: %v", err)
		}
		log.Printf("Encoder loaded (%s)", cfg.Models.EncoderPath)
	} else {
		log.Printf("No encoder configured; predictions will fail until a model is swapped in")
	}

	if cfg.Models.GeneratorModel != "" {
		engine.SwapGenerator(ml.NewOpenAIGenerator(
			cfg.Models.GeneratorBaseURL,
			os.Getenv("OPENAI_API_KEY"),
			cfg.Models.GeneratorModel,
			cfg.Models.MaxNewTokens,
		))
		log.Printf("Generator ready (%s)", cfg.Models.GeneratorModel)
	} else {
		log.Printf("No generator configured; explanations will fail until a model is swapped in")
	}

	r := gin.New()
	r.Use(dbpkg.SetDBtoContext(database))
	r.Use(controllers.SetEngineToContext(engine))
	router.Initialize(r, cfg)

	log.Printf("Zero-shot backend listening on :%s", cfg.ApiPort)
	log.Fatal(r.Run(":" + cfg.ApiPort))
}
