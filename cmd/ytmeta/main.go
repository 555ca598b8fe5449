// Command ytmeta prints the metadata of a single YouTube video, either as
// clipboard text or as JSON.
//
//	ytmeta [--key KEY] [--json] [--fallback] <url>
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"yt-analyze/domain/model"
	"yt-analyze/infrastructure/configuration"
	"yt-analyze/infrastructure/logger"
	"yt-analyze/server"
	"yt-analyze/usecase"

	"github.com/spf13/pflag"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	logger.SetOutput(stderr)

	flags := pflag.NewFlagSet("ytmeta", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintln(stderr, "usage: ytmeta [flags] <url>")
		flags.PrintDefaults()
	}
	flags.String("key", "", "YouTube API key (falls back to YOUTUBE_API_KEY)")
	flags.String("cookies", "", "cookie file for yt-dlp (falls back to YTDLP_COOKIE_FILE)")
	flags.String("locale", "", "clipboard label locale: zh or en")
	asJSON := flags.Bool("json", false, "print JSON instead of clipboard text")
	useFallback := flags.Bool("fallback", false, "use yt-dlp page extraction when the API key is missing or the API fails")

	for name, key := range map[string]string{
		"key":     "youtube.apiKey",
		"cookies": "ytdlp.cookieFile",
		"locale":  "render.locale",
	} {
		if err := configuration.BindFlag(flags, name, key); err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return 2
	}
	rawURL := flags.Arg(0)

	cfg, err := configuration.LoadWithFlags(flags)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	level, format := cfg.Logger.Level, cfg.Logger.Format
	if level == "" {
		level = "warn"
	}
	if format == "" {
		format = "text"
	}
	logger.Configure(level, format)

	metadataUsecase := server.NewMetadataUsecase(ctx, cfg)

	var meta *model.VideoMetadata
	if *useFallback {
		meta, err = metadataUsecase.Resolve(ctx, rawURL)
	} else {
		meta, err = metadataUsecase.FetchStrict(ctx, rawURL, cfg.YouTube.Credential())
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(meta); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		return 0
	}

	fmt.Fprintln(stdout, usecase.RenderClipboardTextWithLabels(meta, usecase.LabelsFor(cfg.Render.Locale)))
	return 0
}
