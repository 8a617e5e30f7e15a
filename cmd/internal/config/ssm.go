package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/labstack/gommon/log"
)

const envVarsPrefix = "/stickynotes/prod/"

func loadProdEnv(ctx context.Context) error {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion("us-east-2"))
	if err != nil {
		return fmt.Errorf("unable to load SDK config: %w", err)
	}

	client := ssm.NewFromConfig(cfg)
	pages := ssm.NewGetParametersByPathPaginator(client, &ssm.GetParametersByPathInput{
		Path:           aws.String(envVarsPrefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})

	count := 0
	for pages.HasMorePages() {
		out, err := pages.NextPage(ctx)
		if err != nil {
			return fmt.Errorf("unable to load prod environment: %w", err)
		}

		n, err := exportParameters(out.Parameters, envVarsPrefix)
		if err != nil {
			return err
		}
		count += n
	}

	log.Debugf("loaded %d prod environment variables", count)
	return nil
}

// exportParameters sets one environment variable per parameter, named after
// the parameter with prefix stripped.
func exportParameters(params []types.Parameter, prefix string) (int, error) {
	for _, param := range params {
		key := strings.TrimPrefix(aws.ToString(param.Name), prefix)
		if err := os.Setenv(key, aws.ToString(param.Value)); err != nil {
			return 0, fmt.Errorf("unable to set environment variable %q: %w", key, err)
		}
	}
	return len(params), nil
}
