// Package io reads process descriptions and writes rendered artifacts.
//
// # Import
//
// [ReadText] loads the paragraph to segment. Plain files are returned as-is.
// Markdown files (.md, .markdown) are flattened with goldmark so that every
// paragraph, heading and list item becomes one sentence:
//
//	# Deploy
//	- Build the image
//	- Check if the tests pass
//	- Push the image
//
// reads as "Deploy. Build the image. Check if the tests pass. Push the image."
// and therefore yields one flowchart step per bullet. Fenced and indented
// code blocks are skipped. The path "-" reads standard input.
//
// # Export
//
// [WriteFile] writes an artifact, creating parent directories as needed.
// [WriteSteps] and [ReadSteps] encode classified steps as JSON:
//
//	{
//	  "steps": [
//	    {"text": "Start.", "category": "terminal", "depth": 0}
//	  ]
//	}
//
// For the complete geometry use the JSON sink in [render/flowchart/sink],
// which exports node positions, sizes and wrapped label lines.
//
// [render/flowchart/sink]: github.com/matzehuels/paraflow/pkg/render/flowchart/sink
package io
