// Copyright 2020 Jim Smart
// Copyright 1999 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package robotsmatch

// sitemapCollector is a minimal RobotsParseHandler that only gathers
// Sitemap directive values, in document order.
type sitemapCollector struct {
	sitemaps []string
}

func (c *sitemapCollector) HandleRobotsStart() { c.sitemaps = nil }
func (c *sitemapCollector) HandleRobotsEnd()   {}

func (c *sitemapCollector) HandleUserAgent(lineNum int, value string)          {}
func (c *sitemapCollector) HandleAllow(lineNum int, value string)             {}
func (c *sitemapCollector) HandleDisallow(lineNum int, value string)          {}
func (c *sitemapCollector) HandleUnknownAction(lineNum int, action, value string) {}

func (c *sitemapCollector) HandleSitemap(lineNum int, value string) {
	c.sitemaps = append(c.sitemaps, value)
}

// Sitemaps parses robotsBody and returns every Sitemap directive value, in
// the order they appear. Sitemap URLs are reported verbatim; the matcher
// does not validate them.
func Sitemaps(robotsBody string) []string {
	c := &sitemapCollector{}
	ParseRobotsTxt(robotsBody, c)
	return c.sitemaps
}
