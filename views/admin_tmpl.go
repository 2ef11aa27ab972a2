package views

const adminTmpl = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>PUP Shop - Admin Panel</title>
<link href="https://cdn.jsdelivr.net/npm/tailwindcss@2.2.19/dist/tailwind.min.css" rel="stylesheet">
</head>
<body class="bg-gray-200 p-8">
<img src="/static/images/pup_logo.png" class="mx-auto h-16 w-16 mb-4">
<h1 class="text-3xl font-bold text-center text-[#722F37] mb-6 border-b-2 border-[#722F37] pb-2">INVENTORY MANAGEMENT</h1>

<form action="/add" method="POST" class="bg-white p-6 rounded-lg shadow-md mb-8">
  <div class="grid grid-cols-1 md:grid-cols-2 gap-4">
    <div><label for="item_id" class="font-bold">ITEM ID (for Update/Delete):</label>
      <input type="text" name="item_id" id="item_id" class="p-2 border rounded w-full"></div>
    <div><label for="item_name" class="font-bold">ITEM NAME:</label>
      <input type="text" name="item_name" id="item_name" class="p-2 border rounded w-full"></div>
    <div><label for="quantity" class="font-bold">QUANTITY:</label>
      <input type="number" name="quantity" id="quantity" class="p-2 border rounded w-full"></div>
    <div><label for="price" class="font-bold">PRICE:</label>
      <input type="text" name="price" id="price" class="p-2 border rounded w-full"></div>
  </div>
  <div class="flex justify-center space-x-4 mt-6">
    <button type="submit" formaction="/add" formmethod="post" class="bg-green-600 text-white px-6 py-2 rounded-lg">Add Item</button>
    <button type="submit" formaction="/update" formmethod="post" class="bg-blue-600 text-white px-6 py-2 rounded-lg">Update Item</button>
    <button type="submit" formaction="/delete" formmethod="post" class="bg-red-600 text-white px-6 py-2 rounded-lg">Delete Item</button>
  </div>
</form>

<div class="text-right mb-2">
  <a href="/export" class="text-sm text-blue-700 underline">Export to Excel</a>
</div>

<table class="w-full bg-white rounded-lg shadow-md">
  <thead class="bg-[#722F37] text-white">
    <tr><th class="p-3">ID</th><th class="p-3">NAME</th><th class="p-3">QUANTITY</th><th class="p-3">PRICE</th></tr>
  </thead>
  <tbody>
    {{range .Products}}
    <tr class="border-b hover:bg-gray-100">
      <td class="p-3">{{.ID}}</td>
      <td class="p-3">{{.Name}}</td>
      <td class="p-3">{{.Stock}}</td>
      <td class="p-3">{{peso .Price}}</td>
    </tr>
    {{end}}
  </tbody>
</table>
</body>
</html>
`
