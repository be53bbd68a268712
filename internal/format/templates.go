package format

const jsonTemplate = `{
  "task": "{{task_description}}",
  "requirements": [
    "{{requirement_1}}",
    "{{requirement_2}}"
  ],
  "constraints": {
    "{{constraint_key}}": "{{constraint_value}}"
  },
  "expected_output": "{{output_description}}"
}`

const xmlTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<prompt>
  <task>{{task_description}}</task>
  <requirements>
    <requirement>{{requirement_1}}</requirement>
    <requirement>{{requirement_2}}</requirement>
  </requirements>
  <constraints>
    <constraint name="{{constraint_key}}">{{constraint_value}}</constraint>
  </constraints>
  <expected_output>{{output_description}}</expected_output>
</prompt>`

const yamlTemplate = `task: {{task_description}}

requirements:
  - {{requirement_1}}
  - {{requirement_2}}

constraints:
  {{constraint_key}}: {{constraint_value}}

expected_output: {{output_description}}`

const markdownTemplate = `# Task
{{task_description}}

## Requirements
- {{requirement_1}}
- {{requirement_2}}

## Constraints
{{constraints_list}}

## Expected Output
{{output_description}}`

const textTemplate = `Task: {{task_description}}

Requirements:
- {{requirement_1}}
- {{requirement_2}}

Constraints:
- {{constraint_key}}: {{constraint_value}}

Expected Output: {{output_description}}`

// Template returns the placeholder skeleton for a format.
func Template(f Format) string {
	switch f {
	case JSON:
		return jsonTemplate
	case XML:
		return xmlTemplate
	case YAML:
		return yamlTemplate
	case Text:
		return textTemplate
	default:
		return markdownTemplate
	}
}

var explanations = map[Format]string{
	JSON:     "JSON format is ideal for structured data, API interactions, and models that excel at parsing hierarchical information.",
	XML:      "XML format is preferred by models trained on structured markup, offering clear hierarchical relationships.",
	YAML:     "YAML format provides human-readable structure with minimal syntax, ideal for configuration-style prompts.",
	Markdown: "Markdown format is excellent for natural language tasks, documentation, and models trained on web content.",
	Text:     "Plain text format is universal and works well for simple, conversational prompts.",
}
