package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/go-logr/logr/funcr"

	"github.com/imamik/foolaunch/internal/catalog"
	"github.com/imamik/foolaunch/internal/config"
	"github.com/imamik/foolaunch/internal/metrics"
	"github.com/imamik/foolaunch/internal/platform/aws"
	"github.com/imamik/foolaunch/internal/provisioning"
)

// CloudClient is the cloud facade plus the region it is bound to.
type CloudClient interface {
	aws.CloudAPI
	Region() string
}

// LaunchRequest is the input of Launch.
type LaunchRequest struct {
	ConfigPaths []string
	Profiles    []string
	DryRun      bool
	Settings    config.Settings
}

var (
	// newCloudClient connects to AWS for the resolved options.
	newCloudClient = func(ctx context.Context, opts *config.Options, settings config.Settings) (CloudClient, error) {
		var clientOpts []aws.ClientOption
		if opts.Profile != "" {
			clientOpts = append(clientOpts, aws.WithProfile(opts.Profile))
		}
		if settings.HasStaticCredentials() {
			clientOpts = append(clientOpts, aws.WithStaticCredentials(settings.AccessKeyID, settings.SecretAccessKey, settings.SessionToken))
		}
		return aws.NewRealClient(ctx, opts.Region, clientOpts...)
	}

	// loadCatalog loads the instance catalog.
	loadCatalog = func(ctx context.Context, source string, fetcher catalog.ObjectFetcher) (provisioning.InstanceCatalog, error) {
		return catalog.Load(ctx, source, fetcher)
	}

	// newObserver creates the launch observer.
	newObserver = func(jsonLogs bool) provisioning.Observer {
		if jsonLogs {
			return provisioning.NewLogrObserver(funcr.NewJSON(func(obj string) {
				fmt.Fprintln(os.Stderr, obj)
			}, funcr.Options{}))
		}
		return provisioning.NewConsoleObserver()
	}

	// isInteractive reports whether the launch can prompt for confirmation.
	isInteractive = isInteractiveTTY

	// confirmLaunch asks the user to confirm a launch.
	confirmLaunch = confirmWithPrompt

	// waitFunc is the spot poll wait.
	waitFunc provisioning.WaitFunc = provisioning.Sleep
)

// Launch resolves the requested profiles and launches instances.
//
// The workflow:
//  1. Loads the first usable profile document and applies "default" plus the
//     requested profiles in order
//  2. Connects to AWS in the resolved region
//  3. Loads the instance catalog (built-in, file or s3:// URL)
//  4. Asks for confirmation on a terminal unless --yes or --dry-run is set
//  5. Runs the launch phases and prints the instance summary
//
// Metrics are recorded for every launch and pushed when a Pushgateway URL
// is configured.
func Launch(ctx context.Context, req LaunchRequest) error {
	session, _, err := openSession(req.ConfigPaths, req.Profiles)
	if err != nil {
		return err
	}
	opts := session.Options
	opts.DryRun = req.DryRun

	client, err := newCloudClient(ctx, &opts, req.Settings)
	if err != nil {
		return explainError(err)
	}

	cat, err := loadCatalog(ctx, req.Settings.Catalog, client)
	if err != nil {
		return explainError(err)
	}

	if !opts.DryRun && !req.Settings.AssumeYes && isInteractive() {
		ok, err := confirmLaunch(ctx, &opts)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(output, "Launch cancelled.")
			return nil
		}
	}

	recorder := metrics.NewRecorder()
	pctx := provisioning.NewContext(ctx, &opts, client, cat)
	pctx.Region = client.Region()
	pctx.Observer = newObserver(req.Settings.JSONLogs).WithFields(map[string]string{
		"profiles": strings.Join(session.Applied(), ","),
		"region":   pctx.Region,
	})
	pctx.Metrics = recorder
	if req.Settings.PollInterval > 0 {
		pctx.PollInterval = req.Settings.PollInterval
	}
	pctx.Wait = waitFunc

	start := time.Now()
	instances, err := provisioning.Launch(pctx)

	result := metrics.ResultSuccess
	if err != nil {
		result = metrics.ResultError
	}
	recorder.RecordLaunch(metrics.Mode(opts.Spot), result, time.Since(start))
	pushMetrics(ctx, recorder, req.Settings.Pushgateway)

	if err != nil {
		return explainError(err)
	}

	fmt.Fprint(output, renderLaunchSummary(&opts, pctx.Region, instances))
	return nil
}

func pushMetrics(ctx context.Context, recorder *metrics.Recorder, url string) {
	if url == "" {
		return
	}
	if err := recorder.Push(ctx, url, metrics.DefaultJob); err != nil {
		log.Printf("Warning: %v", err)
	}
}

// explainError adds a hint for errors with a common fix.
func explainError(err error) error {
	switch {
	case aws.IsUnauthorized(err):
		return fmt.Errorf("%w\nCheck the AWS credentials and IAM permissions for this profile", err)
	case aws.IsRateLimited(err):
		return fmt.Errorf("%w\nEC2 is throttling requests for this account; run the launch again later", err)
	case aws.IsNotFound(err):
		return fmt.Errorf("%w\nCheck that the referenced resource exists in the configured region", err)
	case errors.Is(err, provisioning.ErrAmbiguousImage):
		return fmt.Errorf("%w\nThe image option must name exactly one AMI visible to this account", err)
	case errors.Is(err, catalog.ErrUnknownInstanceType):
		return fmt.Errorf("%w\nAdd the instance type to a catalog file and pass it with --catalog", err)
	}
	return err
}
