// Package jmx serializes a load configuration and a set of endpoints into a
// JMeter test plan document. The element vocabulary, attribute names and
// hashTree nesting are part of JMeter's file format contract and must be
// reproduced exactly for the plan to load.
package jmx

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/sudoDevesh/swagger2jmeter/internal/models"
	"github.com/sudoDevesh/swagger2jmeter/internal/openapi"
)

// Version markers preserved verbatim for JMeter compatibility.
const (
	planVersion    = "1.2"
	planProperties = "5.0"
	jmeterVersion  = "5.6.3"
)

// Serialize produces the complete test plan XML for the given configuration
// and endpoints. The caller guarantees a non-empty endpoint selection; an
// empty one is rejected upstream. All interpolated values are escaped on
// write, so descriptor fields and headers may contain XML metacharacters.
func Serialize(cfg models.PlanConfig, endpoints []models.Endpoint) (string, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("jmeterTestPlan")
	root.CreateAttr("version", planVersion)
	root.CreateAttr("properties", planProperties)
	root.CreateAttr("jmeter", jmeterVersion)

	outer := root.CreateElement("hashTree")
	writeTestPlan(outer, cfg)

	planTree := outer.CreateElement("hashTree")
	writeThreadGroup(planTree, cfg)

	groupTree := planTree.CreateElement("hashTree")
	for _, ep := range endpoints {
		writeSampler(groupTree, ep)
		samplerTree := groupTree.CreateElement("hashTree")
		writeHeaderManager(samplerTree, cfg.Headers)
		samplerTree.CreateElement("hashTree")
	}
	writeResultCollector(groupTree)
	groupTree.CreateElement("hashTree")

	doc.Indent(2)
	return doc.WriteToString()
}

// Filename suggests a download name for the plan: the title with whitespace
// runs collapsed to underscores, suffixed ".jmx".
func Filename(title string) string {
	name := strings.Join(strings.Fields(title), "_")
	if name == "" {
		name = "test_plan"
	}
	return name + ".jmx"
}

func writeTestPlan(parent *etree.Element, cfg models.PlanConfig) {
	plan := element(parent, "TestPlan", "TestPlanGui", "TestPlan", cfg.Title)
	stringProp(plan, "TestPlan.comments", "")
	boolProp(plan, "TestPlan.functional_mode", false)
	boolProp(plan, "TestPlan.tearDown_on_shutdown", true)
	boolProp(plan, "TestPlan.serialize_threadgroups", false)

	vars := plan.CreateElement("elementProp")
	vars.CreateAttr("name", "TestPlan.user_defined_variables")
	vars.CreateAttr("elementType", "Arguments")
	vars.CreateAttr("guiclass", "ArgumentsPanel")
	vars.CreateAttr("testclass", "Arguments")
	vars.CreateAttr("testname", "User Defined Variables")
	vars.CreateAttr("enabled", "true")
	args := vars.CreateElement("collectionProp")
	args.CreateAttr("name", "Arguments.arguments")

	split := openapi.SplitBaseURL(cfg.BaseURL)
	argument(args, "BASE_URL", cfg.BaseURL)
	argument(args, "PROTOCOL", split.Protocol)
	argument(args, "SERVER_NAME", split.Host)
	argument(args, "PORT", split.Port)

	stringProp(plan, "TestPlan.user_define_classpath", "")
}

func writeThreadGroup(parent *etree.Element, cfg models.PlanConfig) {
	tg := element(parent, "ThreadGroup", "ThreadGroupGui", "ThreadGroup", "Thread Group")
	stringProp(tg, "ThreadGroup.on_sample_error", "continue")

	// Loop count -1 with the scheduler on means "run for the configured
	// duration", not a fixed iteration count.
	lc := tg.CreateElement("elementProp")
	lc.CreateAttr("name", "ThreadGroup.main_controller")
	lc.CreateAttr("elementType", "LoopController")
	lc.CreateAttr("guiclass", "LoopControlPanel")
	lc.CreateAttr("testclass", "LoopController")
	lc.CreateAttr("testname", "Loop Controller")
	lc.CreateAttr("enabled", "true")
	boolProp(lc, "LoopController.continue_forever", false)
	stringProp(lc, "LoopController.loops", "-1")

	stringProp(tg, "ThreadGroup.num_threads", strconv.Itoa(cfg.Threads))
	stringProp(tg, "ThreadGroup.ramp_time", strconv.Itoa(cfg.RampTime))
	boolProp(tg, "ThreadGroup.scheduler", true)
	stringProp(tg, "ThreadGroup.duration", strconv.Itoa(cfg.Duration))
	stringProp(tg, "ThreadGroup.delay", "")
	boolProp(tg, "ThreadGroup.same_user_on_next_iteration", true)
}

func writeSampler(parent *etree.Element, ep models.Endpoint) {
	sampler := element(parent, "HTTPSamplerProxy", "HttpTestSampleGui", "HTTPSamplerProxy", ep.Label())

	args := sampler.CreateElement("elementProp")
	args.CreateAttr("name", "HTTPsampler.Arguments")
	args.CreateAttr("elementType", "Arguments")
	args.CreateAttr("guiclass", "HTTPArgumentsPanel")
	args.CreateAttr("testclass", "Arguments")
	args.CreateAttr("testname", "User Defined Variables")
	args.CreateAttr("enabled", "true")
	coll := args.CreateElement("collectionProp")
	coll.CreateAttr("name", "Arguments.arguments")

	// Host, port and protocol reference the plan variables symbolically so
	// an operator can retarget the plan without regenerating it.
	stringProp(sampler, "HTTPSampler.domain", openapi.PlaceholderHost)
	stringProp(sampler, "HTTPSampler.port", openapi.PlaceholderPort)
	stringProp(sampler, "HTTPSampler.protocol", openapi.PlaceholderProtocol)
	stringProp(sampler, "HTTPSampler.contentEncoding", "")
	stringProp(sampler, "HTTPSampler.path", ep.Path)
	stringProp(sampler, "HTTPSampler.method", ep.Method)
	boolProp(sampler, "HTTPSampler.follow_redirects", true)
	boolProp(sampler, "HTTPSampler.auto_redirects", false)
	boolProp(sampler, "HTTPSampler.use_keepalive", true)
	boolProp(sampler, "HTTPSampler.DO_MULTIPART_POST", false)
	boolProp(sampler, "HTTPSampler.postBodyRaw", true)
}

func writeHeaderManager(parent *etree.Element, headers []models.Header) {
	hm := element(parent, "HeaderManager", "HeaderPanel", "HeaderManager", "HTTP Header Manager")
	coll := hm.CreateElement("collectionProp")
	coll.CreateAttr("name", "HeaderManager.headers")

	for _, h := range headers {
		if strings.TrimSpace(h.Key) == "" {
			continue
		}
		el := coll.CreateElement("elementProp")
		el.CreateAttr("name", "")
		el.CreateAttr("elementType", "Header")
		stringProp(el, "Header.name", h.Key)
		stringProp(el, "Header.value", h.Value)
	}
}

func writeResultCollector(parent *etree.Element) {
	rc := element(parent, "ResultCollector", "ViewResultsFullVisualizer", "ResultCollector", "View Results Tree")
	boolProp(rc, "ResultCollector.error_logging", false)

	obj := rc.CreateElement("objProp")
	obj.CreateElement("name").SetText("saveConfig")
	val := obj.CreateElement("value")
	val.CreateAttr("class", "SampleSaveConfiguration")
	for _, f := range []struct {
		name  string
		value string
	}{
		{"time", "true"},
		{"latency", "true"},
		{"timestamp", "true"},
		{"success", "true"},
		{"label", "true"},
		{"code", "true"},
		{"message", "true"},
		{"threadName", "true"},
		{"dataType", "true"},
		{"encoding", "false"},
		{"assertions", "true"},
		{"subresults", "true"},
		{"responseData", "false"},
		{"samplerData", "false"},
		{"xml", "false"},
		{"fieldNames", "true"},
		{"responseHeaders", "false"},
		{"requestHeaders", "false"},
		{"responseDataOnError", "false"},
		{"saveAssertionResultsFailureMessage", "true"},
		{"assertionsResultsToSave", "0"},
		{"bytes", "true"},
		{"sentBytes", "true"},
		{"url", "true"},
		{"threadCounts", "true"},
		{"idleTime", "true"},
		{"connectTime", "true"},
	} {
		val.CreateElement(f.name).SetText(f.value)
	}

	stringProp(rc, "filename", "")
}

func element(parent *etree.Element, tag, guiclass, testclass, testname string) *etree.Element {
	el := parent.CreateElement(tag)
	el.CreateAttr("guiclass", guiclass)
	el.CreateAttr("testclass", testclass)
	el.CreateAttr("testname", testname)
	el.CreateAttr("enabled", "true")
	return el
}

func stringProp(parent *etree.Element, name, value string) {
	p := parent.CreateElement("stringProp")
	p.CreateAttr("name", name)
	p.SetText(value)
}

func boolProp(parent *etree.Element, name string, value bool) {
	p := parent.CreateElement("boolProp")
	p.CreateAttr("name", name)
	p.SetText(strconv.FormatBool(value))
}

func argument(parent *etree.Element, name, value string) {
	el := parent.CreateElement("elementProp")
	el.CreateAttr("name", name)
	el.CreateAttr("elementType", "Argument")
	stringProp(el, "Argument.name", name)
	stringProp(el, "Argument.value", value)
	stringProp(el, "Argument.metadata", "=")
}
