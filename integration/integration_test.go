package integration

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Laisky/errors/v2"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/gurre/s3streamer"

	"github.com/gurre/waf-regional/changeset"
	"github.com/gurre/waf-regional/config"
	"github.com/gurre/waf-regional/integration/mock"
	"github.com/gurre/waf-regional/metrics"
	"github.com/gurre/waf-regional/preflight"
	"github.com/gurre/waf-regional/snapshot"
	"github.com/gurre/waf-regional/store"
	"github.com/gurre/waf-regional/wafregional"
)

const principal = "arn:aws:iam::123456789012:role/waf-operator"

func seedWebACL(srv *mock.WAFServer) {
	srv.Put("WebACL", "acl-1", wafregional.WebACL{
		WebACLId:      aws.String("acl-1"),
		Name:          aws.String("edge"),
		DefaultAction: &wafregional.WafAction{Type: wafregional.WafActionTypeAllow},
		Rules: []wafregional.ActivatedRule{{
			Priority: aws.Int32(1),
			RuleId:   aws.String("rule-1"),
			Type:     wafregional.WafRuleTypeRegular,
			Action:   &wafregional.WafAction{Type: wafregional.WafActionTypeBlock},
		}},
	})
	srv.Put("Rule", "rule-1", wafregional.Rule{
		RuleId: aws.String("rule-1"),
		Name:   aws.String("blocklist"),
		Predicates: []wafregional.Predicate{
			{Negated: aws.Bool(false), Type: wafregional.PredicateTypeIPMatch, DataId: aws.String("ip-1")},
		},
	})
	srv.Put("IPSet", "ip-1", wafregional.IPSet{IPSetId: aws.String("ip-1"), Name: aws.String("blocked")})
}

func changeLine(action, value string) string {
	return `{"Action":"UpdateIPSet","Request":{"IPSetId":"ip-1","Updates":[{"Action":"` + action +
		`","IPSetDescriptor":{"Type":"IPV4","Value":"` + value + `"}}]}}`
}

// TestFullIntegrationFlow checks permissions, applies a change file streamed
// from S3 with checkpoints in DynamoDB, then exports the result to S3.
func TestFullIntegrationFlow(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	srv := mock.NewWAFServer()
	defer srv.Close()
	seedWebACL(srv)

	mockS3 := mock.NewS3Client()
	mockDDB := mock.NewDynamoDBClient("pk")
	mockIAM := mock.NewIAMClient(preflight.IAMPrefix+"GetChangeToken", preflight.IAMPrefix+"UpdateIPSet")

	cfg := config.Default()
	cfg.Region = "us-east-1"
	cfg.Endpoint = srv.URL
	cfg.StoreURI = "dynamodb://waf-state"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Invalid config: %v", err)
	}

	m := metrics.NewMetrics()
	client := wafregional.New(wafregional.Options{
		Region:           cfg.Region,
		BaseEndpoint:     aws.String(cfg.Endpoint),
		MaxAttempts:      1,
		StaleDataRetries: cfg.StaleRetries,
		Recorder:         m,
	})

	checker := preflight.NewChecker(mockIAM, nil)
	if err := checker.Require(ctx, principal, []string{"GetChangeToken", "UpdateIPSet"}); err != nil {
		t.Fatalf("Preflight failed: %v", err)
	}
	if err := checker.Require(ctx, principal, []string{"DeleteWebACL"}); !errors.Is(err, preflight.ErrDenied) {
		t.Fatalf("Expected DeleteWebACL to be denied, got %v", err)
	}

	checkpoints, err := store.NewFromURI(cfg.StoreURI, store.Clients{S3: mockS3, DynamoDB: mockDDB})
	if err != nil {
		t.Fatalf("Failed to open checkpoint store: %v", err)
	}

	lines := []string{
		changeLine("INSERT", "192.0.2.1/32"),
		changeLine("INSERT", "198.51.100.0/24"),
		"",
		changeLine("DELETE", "192.0.2.1/32"),
	}
	mockS3.AddFile("changes", "2024/03/01/blocklist.jsonl", []byte(strings.Join(lines, "\n")+"\n"))

	src, err := changeset.OpenSource("s3://changes/2024/03/01/blocklist.jsonl", s3streamer.NewS3Streamer(mockS3))
	if err != nil {
		t.Fatalf("Failed to open change file: %v", err)
	}
	applier := changeset.NewApplier(client, checkpoints, changeset.Options{
		RunID:        "blocklist-2024-03-01",
		Wait:         true,
		WaitInterval: time.Millisecond,
		Recorder:     m,
	})
	res, err := applier.Apply(ctx, src)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if res.Applied != 3 || !res.Completed {
		t.Fatalf("Expected 3 applied changes and a completed run, got %+v", res)
	}
	if item := mockDDB.Item("waf-state", changeset.CheckpointKey("blocklist-2024-03-01", src.Name())); item == nil {
		t.Fatal("Checkpoint was not written to DynamoDB")
	}

	// Running the same file again must not replay the non-idempotent updates.
	updates := srv.Count(wafregional.ActionUpdateIPSet)
	if _, err := applier.Apply(ctx, src); err != nil {
		t.Fatalf("Second apply failed: %v", err)
	}
	if got := srv.Count(wafregional.ActionUpdateIPSet); got != updates {
		t.Errorf("Second apply called UpdateIPSet %d more times", got-updates)
	}

	snapshots, err := store.NewS3Store(mockS3, "s3://waf-backups/snapshots")
	if err != nil {
		t.Fatalf("Failed to create snapshot store: %v", err)
	}
	snap, err := snapshot.NewExporter(client, cfg.Workers, nil).Export(ctx, "acl-1")
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if err := snapshot.Save(ctx, snapshots, snap); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, ok := mockS3.File("waf-backups", "snapshots/webacl/acl-1.json"); !ok {
		t.Fatalf("Snapshot not found in S3, keys: %v", mockS3.Keys())
	}

	loaded, err := snapshot.Load(ctx, snapshots, "acl-1")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	set, ok := loaded.IPSets["ip-1"]
	if !ok {
		t.Fatalf("IP set missing from snapshot: %s", loaded)
	}
	if len(set.IPSetDescriptors) != 1 || aws.ToString(set.IPSetDescriptors[0].Value) != "198.51.100.0/24" {
		t.Errorf("Unexpected descriptors after apply: %+v", set.IPSetDescriptors)
	}

	report := m.GenerateReport()
	t.Logf("Report: %s", report)
	if report.ChangesApplied != 3 {
		t.Errorf("Expected 3 changes applied, got %d", report.ChangesApplied)
	}
	if report.Calls[wafregional.ActionGetChangeToken] != 3 {
		t.Errorf("Expected 3 change tokens, got %d", report.Calls[wafregional.ActionGetChangeToken])
	}
	if report.Calls[wafregional.ActionGetChangeTokenStatus] == 0 {
		t.Error("Expected change token status polls")
	}
}

// TestResumeAfterFailure stops an apply on a rejected change, repairs the
// state out of band and checks the next run continues after the last applied
// line instead of replaying it.
func TestResumeAfterFailure(t *testing.T) {
	ctx := context.Background()

	srv := mock.NewWAFServer()
	defer srv.Close()
	seedWebACL(srv)

	client := wafregional.New(wafregional.Options{
		Region:       "us-east-1",
		BaseEndpoint: aws.String(srv.URL),
		MaxAttempts:  1,
	})

	mockS3 := mock.NewS3Client()
	mockS3.AddFile("changes", "batch.jsonl", []byte(strings.Join([]string{
		changeLine("INSERT", "192.0.2.1/32"),
		changeLine("DELETE", "203.0.113.9/32"),
		changeLine("INSERT", "192.0.2.3/32"),
	}, "\n")))
	src := changeset.NewS3Source(s3streamer.NewS3Streamer(mockS3), "changes", "batch.jsonl")

	dry, err := changeset.NewApplier(client, store.NewMemoryStore(), changeset.Options{DryRun: true}).Apply(ctx, src)
	if err != nil || dry.Applied != 3 {
		t.Fatalf("Dry run failed: %+v %v", dry, err)
	}
	if n := len(srv.Requests()); n != 0 {
		t.Fatalf("Dry run called the service %d times", n)
	}

	st := store.NewMemoryStore()
	applier := changeset.NewApplier(client, st, changeset.Options{})
	res, err := applier.Apply(ctx, src)
	if !errors.Is(err, wafregional.ErrNonexistentItem) {
		t.Fatalf("Expected WAFNonexistentItemException, got %v", err)
	}
	if res.Applied != 1 {
		t.Fatalf("Expected 1 applied change before the failure, got %d", res.Applied)
	}

	srv.Put("IPSet", "ip-1", wafregional.IPSet{
		IPSetId: aws.String("ip-1"),
		Name:    aws.String("blocked"),
		IPSetDescriptors: []wafregional.IPSetDescriptor{
			{Type: wafregional.IPSetDescriptorTypeIpv4, Value: aws.String("192.0.2.1/32")},
			{Type: wafregional.IPSetDescriptorTypeIpv4, Value: aws.String("203.0.113.9/32")},
		},
	})

	res, err = applier.Apply(ctx, src)
	if err != nil {
		t.Fatalf("Resumed apply failed: %v", err)
	}
	if res.Resumed != 1 || res.Applied != 2 {
		t.Fatalf("Expected 1 resumed and 2 applied lines, got %+v", res)
	}

	var set wafregional.IPSet
	if !srv.Get("IPSet", "ip-1", &set) {
		t.Fatal("IP set disappeared")
	}
	var values []string
	for _, d := range set.IPSetDescriptors {
		values = append(values, aws.ToString(d.Value))
	}
	if got := strings.Join(values, ","); got != "192.0.2.1/32,192.0.2.3/32" {
		t.Errorf("Unexpected descriptors: %s", got)
	}
}
