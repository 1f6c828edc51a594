package validation

// documentSchema is the subset of the platform document schema the engine
// can emit. It enforces the structural invariants the engine maintains by
// construction: taskList containers hold only task content, table cells are
// never empty, and text nodes always carry at least one character.
const documentSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["version", "type", "content"],
  "properties": {
    "version": {"const": 1},
    "type": {"const": "doc"},
    "content": {"type": "array", "items": {"$ref": "#/$defs/blockNode"}}
  },
  "$defs": {
    "blockNode": {
      "anyOf": [
        {"$ref": "#/$defs/paragraph"},
        {"$ref": "#/$defs/heading"},
        {"$ref": "#/$defs/bulletList"},
        {"$ref": "#/$defs/orderedList"},
        {"$ref": "#/$defs/taskList"},
        {"$ref": "#/$defs/codeBlock"},
        {"$ref": "#/$defs/blockquote"},
        {"$ref": "#/$defs/rule"},
        {"$ref": "#/$defs/table"},
        {"$ref": "#/$defs/mediaSingle"}
      ]
    },
    "inlineNode": {
      "anyOf": [
        {"$ref": "#/$defs/text"},
        {"$ref": "#/$defs/hardBreak"}
      ]
    },
    "mark": {
      "type": "object",
      "required": ["type"],
      "properties": {
        "type": {"enum": ["em", "strong", "strike", "link", "code"]},
        "attrs": {"type": "object"}
      }
    },
    "text": {
      "type": "object",
      "required": ["type", "text"],
      "properties": {
        "type": {"const": "text"},
        "text": {"type": "string", "minLength": 1},
        "marks": {"type": "array", "items": {"$ref": "#/$defs/mark"}}
      }
    },
    "hardBreak": {
      "type": "object",
      "required": ["type"],
      "properties": {"type": {"const": "hardBreak"}}
    },
    "paragraph": {
      "type": "object",
      "required": ["type"],
      "properties": {
        "type": {"const": "paragraph"},
        "content": {"type": "array", "items": {"$ref": "#/$defs/inlineNode"}}
      }
    },
    "heading": {
      "type": "object",
      "required": ["type", "attrs"],
      "properties": {
        "type": {"const": "heading"},
        "attrs": {
          "type": "object",
          "required": ["level"],
          "properties": {"level": {"type": "integer", "minimum": 1, "maximum": 6}}
        },
        "content": {"type": "array", "items": {"$ref": "#/$defs/inlineNode"}}
      }
    },
    "bulletList": {
      "type": "object",
      "required": ["type", "content"],
      "properties": {
        "type": {"const": "bulletList"},
        "content": {"type": "array", "items": {"$ref": "#/$defs/listItem"}}
      }
    },
    "orderedList": {
      "type": "object",
      "required": ["type", "content"],
      "properties": {
        "type": {"const": "orderedList"},
        "attrs": {
          "type": "object",
          "properties": {"order": {"type": "integer", "minimum": 0}}
        },
        "content": {"type": "array", "items": {"$ref": "#/$defs/listItem"}}
      }
    },
    "listItem": {
      "type": "object",
      "required": ["type"],
      "properties": {
        "type": {"const": "listItem"},
        "content": {"type": "array", "items": {"$ref": "#/$defs/blockNode"}}
      }
    },
    "taskList": {
      "type": "object",
      "required": ["type", "attrs"],
      "properties": {
        "type": {"const": "taskList"},
        "attrs": {
          "type": "object",
          "required": ["localId"],
          "properties": {"localId": {"type": "string"}}
        },
        "content": {
          "type": "array",
          "items": {
            "anyOf": [
              {"$ref": "#/$defs/taskItem"},
              {"$ref": "#/$defs/taskList"}
            ]
          }
        }
      }
    },
    "taskItem": {
      "type": "object",
      "required": ["type", "attrs"],
      "properties": {
        "type": {"const": "taskItem"},
        "attrs": {
          "type": "object",
          "required": ["localId", "state"],
          "properties": {
            "localId": {"type": "string"},
            "state": {"enum": ["TODO", "DONE"]}
          }
        },
        "content": {"type": "array", "items": {"$ref": "#/$defs/inlineNode"}}
      }
    },
    "codeBlock": {
      "type": "object",
      "required": ["type"],
      "properties": {
        "type": {"const": "codeBlock"},
        "attrs": {
          "type": "object",
          "properties": {"language": {"type": "string"}}
        },
        "content": {
          "type": "array",
          "maxItems": 1,
          "items": {
            "type": "object",
            "required": ["type", "text"],
            "properties": {
              "type": {"const": "text"},
              "text": {"type": "string"}
            }
          }
        }
      }
    },
    "blockquote": {
      "type": "object",
      "required": ["type", "content"],
      "properties": {
        "type": {"const": "blockquote"},
        "content": {"type": "array", "items": {"$ref": "#/$defs/blockNode"}}
      }
    },
    "rule": {
      "type": "object",
      "required": ["type"],
      "properties": {"type": {"const": "rule"}}
    },
    "table": {
      "type": "object",
      "required": ["type", "content"],
      "properties": {
        "type": {"const": "table"},
        "content": {"type": "array", "items": {"$ref": "#/$defs/tableRow"}}
      }
    },
    "tableRow": {
      "type": "object",
      "required": ["type", "content"],
      "properties": {
        "type": {"const": "tableRow"},
        "content": {
          "type": "array",
          "items": {
            "anyOf": [
              {"$ref": "#/$defs/tableHeader"},
              {"$ref": "#/$defs/tableCell"}
            ]
          }
        }
      }
    },
    "tableHeader": {
      "type": "object",
      "required": ["type", "content"],
      "properties": {
        "type": {"const": "tableHeader"},
        "content": {"type": "array", "minItems": 1, "items": {"$ref": "#/$defs/blockNode"}}
      }
    },
    "tableCell": {
      "type": "object",
      "required": ["type", "content"],
      "properties": {
        "type": {"const": "tableCell"},
        "content": {"type": "array", "minItems": 1, "items": {"$ref": "#/$defs/blockNode"}}
      }
    },
    "mediaSingle": {
      "type": "object",
      "required": ["type", "attrs", "content"],
      "properties": {
        "type": {"const": "mediaSingle"},
        "attrs": {
          "type": "object",
          "required": ["layout"],
          "properties": {"layout": {"type": "string"}}
        },
        "content": {
          "type": "array",
          "minItems": 1,
          "maxItems": 1,
          "items": {"$ref": "#/$defs/media"}
        }
      }
    },
    "media": {
      "type": "object",
      "required": ["type", "attrs"],
      "properties": {
        "type": {"const": "media"},
        "attrs": {
          "type": "object",
          "required": ["type", "url"],
          "properties": {
            "type": {"const": "external"},
            "url": {"type": "string"},
            "alt": {"type": "string"}
          }
        }
      }
    }
  }
}`
