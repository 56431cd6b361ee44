package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/weit-project/eit-toolkit/lib/scoring"
)

func TestServer(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Server Suite")
}

func decode(res *http.Response, v interface{}) {
	defer res.Body.Close()
	Ω(json.NewDecoder(res.Body).Decode(v)).Should(Succeed())
}

var _ = Describe("Scoring API", Ordered, func() {

	var ts *httptest.Server

	var _ = BeforeAll(func() {
		gin.SetMode(gin.TestMode)
		scorer, err := scoring.NewScorer(nil, scoring.DefaultDetectors())
		Ω(err).Should(BeNil())
		ts = httptest.NewServer(newRouter(server{controller: controller{scorer: scorer}}))
	})

	var _ = AfterAll(func() {
		ts.Close()
	})

	var _ = Describe("Status codes", func() {

		var _ = It("Should be a bad request when the body is missing", func() {
			res, err := http.Post(ts.URL+"/score", "application/json", nil)

			Ω(err).Should(BeNil())
			Ω(res.StatusCode).Should(Equal(http.StatusBadRequest))
		})

		var _ = It("Should be a bad request when the original is missing", func() {
			res, err := http.Post(ts.URL+"/score", "application/json", strings.NewReader(`{"answer": "die"}`))

			Ω(err).Should(BeNil())
			Ω(res.StatusCode).Should(Equal(http.StatusBadRequest))

			var body map[string]interface{}
			decode(res, &body)
			Ω(body["status"]).Should(BeEquivalentTo(http.StatusBadRequest))
		})

		var _ = It("Should be a bad request when the body is not json", func() {
			res, err := http.Post(ts.URL+"/align", "application/json", strings.NewReader(`original=das`))

			Ω(err).Should(BeNil())
			Ω(res.StatusCode).Should(Equal(http.StatusBadRequest))
		})

		var _ = It("Should report healthy", func() {
			res, err := http.Get(ts.URL + "/healthz")

			Ω(err).Should(BeNil())
			Ω(res.StatusCode).Should(Equal(http.StatusOK))
			Ω(res.Header.Get("X-Request-Id")).ShouldNot(BeEmpty())
		})
	})

	var _ = Describe("Scoring", func() {

		original := "Die Häuser sind nicht sehr schön und viel zu teuer."

		var _ = It("Should give zero points for an abandoned answer", func() {
			res, err := http.Post(ts.URL+"/score", "application/json",
				strings.NewReader(`{"original": "`+original+`", "answer": "die haußer sind die"}`))
			Ω(err).Should(BeNil())
			Ω(res.StatusCode).Should(Equal(http.StatusOK))

			var result scoring.Result
			decode(res, &result)
			Ω(result.Score).Should(Equal(0))
			Ω(result.Decided).Should(BeTrue())
			Ω(result.DisqualifiedBy).Should(Equal("Minimal_Repetition_Error"))
		})

		var _ = It("Should give full points for an exact repetition", func() {
			res, err := http.Post(ts.URL+"/score", "application/json",
				strings.NewReader(`{"original": "`+original+`", "answer": "Die Häuser sind nicht sehr schön, und viel zu teuer"}`))
			Ω(err).Should(BeNil())

			var result scoring.Result
			decode(res, &result)
			Ω(result.Score).Should(Equal(4))
		})

		var _ = It("Should list the detectors", func() {
			res, err := http.Get(ts.URL + "/detectors")
			Ω(err).Should(BeNil())

			var detectors []detectorInfo
			decode(res, &detectors)
			Ω(detectors).Should(Equal([]detectorInfo{{Name: "Minimal_Repetition_Error", Severity: 0}}))
		})

		var _ = It("Should align words", func() {
			res, err := http.Post(ts.URL+"/align", "application/json",
				strings.NewReader(`{"original": "Das Essen ist gut", "answer": "Das Esen ist gut"}`))
			Ω(err).Should(BeNil())
			Ω(res.StatusCode).Should(Equal(http.StatusOK))

			var body struct {
				Pairs []struct {
					Original string `json:"original"`
					Answer   string `json:"answer"`
				} `json:"pairs"`
			}
			decode(res, &body)
			Ω(body.Pairs).Should(HaveLen(4))
			Ω(body.Pairs[1].Original).Should(Equal("Essen"))
			Ω(body.Pairs[1].Answer).Should(Equal("Esen"))
		})
	})
})
