package main

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/facet-ui/facet/internal/config"
	"github.com/facet-ui/facet/internal/errors"
	"github.com/facet-ui/facet/pkg/preview"
	"github.com/facet-ui/facet/pkg/publish"
)

func publishCmd() *cobra.Command {
	var (
		dir    string
		bucket string
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Write a static gallery snapshot to the configured target",
		Long: `Render the gallery to static files and write them to the publish
target from facet.json: a local directory or an S3 bucket.

Examples:
  facet publish
  facet publish --dir=out
  facet publish --bucket=my-gallery`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPublish(cmd.Context(), dir, bucket)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Publish to this directory (overrides facet.json)")
	cmd.Flags().StringVar(&bucket, "bucket", "", "Publish to this S3 bucket (overrides facet.json)")

	return cmd
}

func runPublish(ctx context.Context, dir, bucket string) error {
	cfg, err := config.Find(".")
	if err != nil {
		return err
	}
	if dir != "" {
		cfg.Publish = config.PublishConfig{Target: "disk", Dir: dir}
	}
	if bucket != "" {
		cfg.Publish.Target = "s3"
		cfg.Publish.Bucket = bucket
	}

	env, themes, err := buildEnv(cfg)
	if err != nil {
		return err
	}
	defer themes.Close()

	files, err := publish.Snapshot(preview.NewGallery(env, cfg.Preview.Pretty))
	if err != nil {
		return errors.FromError(err, "F301")
	}

	store, target, err := buildStore(ctx, cfg)
	if err != nil {
		return err
	}

	printBanner()
	fmt.Println("  publish")
	fmt.Println()
	if err := publish.NewPublisher(store, nil).Publish(ctx, files); err != nil {
		return errors.FromError(err, "F401")
	}
	success("published %d files to %s", len(files), target)
	return nil
}

func buildStore(ctx context.Context, cfg *config.Config) (publish.Store, string, error) {
	switch cfg.Publish.Target {
	case "disk":
		store, err := publish.NewDiskStore(cfg.Publish.Dir)
		if err != nil {
			return nil, "", errors.New("F400").Wrap(err)
		}
		return store, cfg.Publish.Dir, nil
	case "s3":
		var opts []func(*awsconfig.LoadOptions) error
		if cfg.Publish.Region != "" {
			opts = append(opts, awsconfig.WithRegion(cfg.Publish.Region))
		}
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
		if err != nil {
			return nil, "", errors.New("F400").Wrap(err)
		}
		store := publish.NewS3Store(s3.NewFromConfig(awsCfg), cfg.Publish.Bucket, cfg.Publish.Prefix)
		return store, "s3://" + cfg.Publish.Bucket, nil
	default:
		return nil, "", errors.New("F104")
	}
}
