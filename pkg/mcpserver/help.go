package mcpserver

// dqlHelpText is the static syntax reference returned by the dql_help tool.
const dqlHelpText = `DQL (Diffbot Query Language) Help

DQL allows you to search Diffbot's Knowledge Graph using a simple query syntax.

Basic Syntax:
- Field searches: field:value
- Exact phrases: "exact phrase"
- OR operator: query1 OR query2
- AND operator: query1 AND query2 (default)
- NOT operator: NOT query

Common Fields:
- type: Content type (article, product, image, video, etc.)
- title: Article/page title
- author: Author name
- text: Body text content
- tags: Associated tags
- date: Publication date
- site: Website domain
- language: Content language

Date Ranges:
- date:>2023-01-01 (after date)
- date:<2023-12-31 (before date)
- date:2023-01-01..2023-12-31 (date range)

Examples:
1. Find articles by author:
   type:article author:"John Smith"

2. Find recent tech articles:
   type:article tags:technology date:>2023-01-01

3. Find products under $100:
   type:product price:<100

4. Find articles about AI or machine learning:
   type:article (text:"artificial intelligence" OR text:"machine learning")

5. Find content from specific site:
   site:techcrunch.com type:article

6. Complex query:
   type:article author:"Jane Doe" date:>2023-06-01 NOT tags:opinion

Tips:
- Use quotes for exact phrases
- Combine multiple conditions with AND/OR
- Use parentheses to group conditions
- Field names are case-sensitive
- Use wildcards (*) for partial matches`
