package main

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/goliatone/go-shortcodes"
)

const samplePost = `[vc_row][vc_column][vc_column_text]
<p>Welcome to the [span color=&#8221;teal&#8221;]new[/span] site.</p>
[caption id="attachment_12" align="alignnone" width="640"]<img src="/img/cat.jpg"> The office cat[/caption]
[gallery ids="12,13,14" columns=3]
[premium_content]Members read on.[premelse]Subscribe to read more.[/premium_content]
[button button_url=&quot;https://example.com/join&quot; button_text="Join"]
[tweet id="123"]
[/vc_column_text][/vc_column][/vc_row]`

func main() {
	ctx := context.Background()

	cfg := shortcodes.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Features.Commands = true
	cfg.Logging.Level = "debug"
	cfg.Shortcodes.Unwrap = []string{"fusion_builder_container"}

	module, err := shortcodes.New(cfg)
	if err != nil {
		log.Fatalf("configure shortcodes: %v", err)
	}

	if err := module.Registry().Register("youtube", func(attrs shortcodes.Attributes, _ *string) string {
		id := attrs.String("id")
		if id == "" {
			id = attrs.String("0")
		}
		return fmt.Sprintf(`<iframe src="https://www.youtube.com/embed/%s"></iframe>`, id)
	}); err != nil {
		log.Fatalf("register youtube: %v", err)
	}

	out, err := module.Expand(ctx, samplePost)
	if err != nil {
		log.Fatalf("expand sample post: %v", err)
	}
	fmt.Println(strings.TrimSpace(out))

	var commandOutput string
	err = module.Commands().Expand.Execute(ctx, shortcodes.ExpandContentCommand{
		ContentID: uuid.New(),
		Source:    "wordpress",
		Content:   `[fusion_builder_container][youtube "dQw4w9WgXcQ"][/fusion_builder_container]`,
		ResultCallback: func(result shortcodes.ExpandResult) {
			commandOutput = result.Output
		},
	})
	if err != nil {
		log.Fatalf("expand command: %v", err)
	}
	fmt.Println(strings.TrimSpace(commandOutput))

	results, err := module.ExpandBatch(ctx, []shortcodes.Document{
		{ID: uuid.New(), Source: "wordpress", Content: `[span color="red"]one[/span]`},
		{ID: uuid.New(), Source: "wordpress", Content: `[et_pb_section][et_pb_text]two[/et_pb_text][/et_pb_section]`},
	})
	if err != nil {
		log.Fatalf("expand batch: %v", err)
	}
	for _, result := range results {
		if result.Err != nil {
			log.Printf("document %s failed: %v", result.ID, result.Err)
			continue
		}
		fmt.Printf("%s: %s\n", result.ID, strings.TrimSpace(result.Output))
	}
}
