package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/typetalk-sentiment/api/internal/comprehend"
	"github.com/typetalk-sentiment/api/internal/config"
	"github.com/typetalk-sentiment/api/internal/typetalk"
)

func main() {
	spaceKey := flag.String("space", "", "space key to list topics for (defaults to the first space)")
	topicID := flag.Int64("topic", 0, "topic id to fetch messages for (defaults to the first topic)")
	flag.Parse()

	fmt.Println("🔍 Typetalk Sentiment API - Upstream Connectivity Test")
	fmt.Println("=====================================================")

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	token := os.Getenv("TYPETALK_TOKEN")
	if token == "" {
		log.Fatal("TYPETALK_TOKEN must be set to a Typetalk access token")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	fmt.Println("\n📡 Testing Typetalk...")
	fmt.Println(strings.Repeat("-", 40))

	client := typetalk.NewAPIClient(cfg.TypetalkBaseURL, cfg.TypetalkTimeout)
	texts := testTypetalk(ctx, client, token, *spaceKey, *topicID)

	fmt.Println("\n🧠 Testing AWS Comprehend...")
	fmt.Println(strings.Repeat("-", 40))

	analyzer, err := comprehend.NewAPIClient(cfg.AWSRegion, cfg.ComprehendEndpoint, cfg.LanguageCode)
	if err != nil {
		log.Fatalf("Failed to create Comprehend client: %v", err)
	}
	if len(texts) == 0 {
		texts = []string{"今日はとても良い天気です"}
	}
	testComprehend(ctx, analyzer, texts)

	fmt.Println("\n✅ Connectivity test completed!")
}

// testTypetalk walks spaces, topics and one page of messages. It returns the
// message bodies found, capped to one Comprehend batch.
func testTypetalk(ctx context.Context, client typetalk.Client, token, spaceKey string, topicID int64) []string {
	fmt.Print("🔸 Spaces... ")
	spaces, err := client.GetSpaces(ctx, token)
	if err != nil {
		fmt.Printf("❌ ERROR: %v\n", err)
		return nil
	}
	fmt.Printf("✅ SUCCESS (%d spaces)\n", len(spaces.MySpaces))

	if spaceKey == "" {
		if len(spaces.MySpaces) == 0 {
			return nil
		}
		spaceKey = spaces.MySpaces[0].Space.Key
	}

	fmt.Printf("🔸 Topics in %s... ", spaceKey)
	topics, err := client.GetTopics(ctx, token, spaceKey)
	if err != nil {
		fmt.Printf("❌ ERROR: %v\n", err)
		return nil
	}
	fmt.Printf("✅ SUCCESS (%d topics)\n", len(topics.Topics))

	if topicID == 0 {
		if len(topics.Topics) == 0 {
			return nil
		}
		topicID = topics.Topics[0].Topic.ID
	}

	fmt.Printf("🔸 Messages in topic %d... ", topicID)
	messages, err := client.GetMessages(ctx, token, topicID, nil)
	if err != nil {
		fmt.Printf("❌ ERROR: %v\n", err)
		return nil
	}
	fmt.Printf("✅ SUCCESS (%d posts, hasNext: %t)\n", len(messages.Posts), messages.HasNext)

	var texts []string
	for _, post := range messages.Posts {
		if strings.TrimSpace(post.Message) != "" && len(texts) < comprehend.MaxBatchSize {
			texts = append(texts, post.Message)
		}
	}
	return texts
}

func testComprehend(ctx context.Context, analyzer comprehend.Analyzer, texts []string) {
	fmt.Printf("🔸 BatchDetectSentiment (%d texts)... ", len(texts))
	result, err := analyzer.Analyze(ctx, texts)
	if err != nil {
		fmt.Printf("❌ ERROR: %v\n", err)
		return
	}
	fmt.Printf("✅ SUCCESS (%d results, %d errors)\n", len(result.Results), len(result.Errors))

	if len(result.Results) > 0 {
		first := result.Results[0]
		fmt.Printf("   📝 Sample: %s (positive %.2f, negative %.2f)\n", first.Sentiment, first.Score.Positive, first.Score.Negative)
	}
}
